package uid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrNoNodeIdentity is returned when neither a machine id nor a hostname exists.
var ErrNoNodeIdentity = errors.New("uid: no machine-id or hostname to derive a node identity")

var blobEncoding = base32.NewEncoding("0123456789abcdefghijklmnopqrstuv").WithPadding(base32.NoPadding)

// BlobKey produces object storage keys for uploaded bulk files.
//
// A key is a UTC date partition followed by 20 bytes rendered in lower case
// base32: 6 bytes of milliseconds, 4 bytes of node hash, 4 bytes of a
// per-process counter and 6 random bytes. Keys from one node sort by time.
type BlobKey struct {
	node    [4]byte
	counter atomic.Uint32
	now     func() time.Time
}

func NewBlobKey() (*BlobKey, error) {
	src, err := nodeIdentity()
	if err != nil {
		return nil, err
	}

	k := &BlobKey{now: time.Now}
	sum := sha256.Sum256([]byte(src))
	copy(k.node[:], sum[:4])

	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	k.counter.Store(binary.BigEndian.Uint32(seed[:]))

	return k, nil
}

func nodeIdentity() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}
	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}
	return "", ErrNoNodeIdentity
}

// Generate returns a key shaped like "2026/10/18/<32 base32 chars>".
func (k *BlobKey) Generate() string {
	now := k.now().UTC()

	var raw [20]byte
	ms := uint64(now.UnixMilli())
	raw[0] = byte(ms >> 40)
	raw[1] = byte(ms >> 32)
	binary.BigEndian.PutUint32(raw[2:6], uint32(ms))
	copy(raw[6:10], k.node[:])
	binary.BigEndian.PutUint32(raw[10:14], k.counter.Add(1))
	if _, err := rand.Read(raw[14:]); err != nil {
		// counter still keeps keys unique within the process
		clear(raw[14:])
	}

	return now.Format("2006/01/02") + "/" + blobEncoding.EncodeToString(raw[:])
}
