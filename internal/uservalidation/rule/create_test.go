package rule

import (
	"testing"

	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

func TestCreateUser(t *testing.T) {
	v := newValidator(t)

	runCases(t, v.CreateUser, []pipelineCase{
		{
			name: "Minimal",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com"}`,
		},
		{
			name: "Complete",
			req: `{
				"username": "amit",
				"firstName": "Amit",
				"email": "amit@example.com",
				"phone": "8123456789",
				"phoneVerified": true,
				"dob": "1990-01-15",
				"roles": ["PUBLIC"],
				"language": ["English"],
				"externalIds": [
					{"id": "1", "provider": "state", "idType": "roll", "operation": "ADD"},
					{"id": "2", "provider": "state", "idType": "aadhaar"}
				],
				"address": [{"addressLine1": "MG Road", "city": "Pune", "addType": "home"}],
				"education": [{"name": "B.Tech", "degree": "Engineering", "address": {"addressLine1": "Campus", "city": "Delhi", "addType": "anything"}}],
				"jobProfile": [{"jobName": "Tutor", "orgName": "School", "joiningDate": "2015-06-01", "endDate": "2020-03-31"}],
				"webPages": [{"type": "fb", "url": "https://facebook.com/amit"}]
			}`,
		},
		{
			name: "PhoneOnly",
			req:  `{"username":"amit","firstName":"Amit","phone":"2015550123","countryCode":"+1","phoneVerified":true}`,
		},
		{
			name: "ExternalIDsNotList",
			req:  `{"externalIds":{"id":"1"}}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of externalIds should be List.",
		},
		{
			name: "ExternalIDEntryNotMap",
			req:  `{"externalIds":["1"]}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of externalIds should be Map.",
		},
		{
			name: "ExternalIDUnknownOperation",
			req:  `{"externalIds":[{"id":"1","provider":"p","idType":"t","operation":"delete"}]}`,
			want: rc(entity.InvalidValue),
			msg:  "Invalid externalIds.operation: delete. Valid values are: add, remove, edit.",
		},
		{
			name: "ExternalIDNonAddOperation",
			req:  `{"externalIds":[{"id":"1","provider":"p","idType":"t","operation":"remove"}]}`,
			want: rc(entity.InvalidValue),
			msg:  "Invalid externalIds.operation: remove. Valid values are: add.",
		},
		{
			name: "ExternalIDMissingProvider",
			req:  `{"externalIds":[{"id":"1","idType":"t"}]}`,
			want: rc(entity.MandatoryParamsMissing),
			msg:  "Mandatory parameter externalIds.provider is missing.",
		},
		{
			name: "ExternalIDDuplicateQuotesFirstEntry",
			req: `{"externalIds":[
				{"id":"1","provider":"State","idType":"Roll"},
				{"id":"2","provider":"other","idType":"roll"},
				{"id":"3","provider":"state","idType":"ROLL"}
			]}`,
			want: rc(entity.DuplicateExternalIDs),
			msg:  "Duplicate external IDs for given idType (Roll) and provider (State).",
		},
		{
			name: "ForbiddenBlankField",
			req:  `{"registeredOrgId":"","username":"amit","firstName":"Amit","email":"amit@example.com"}`,
			want: rc(entity.InvalidRequestParameter),
			msg:  "Invalid parameter registeredOrgId in request.",
		},
		{
			name: "ForbiddenNullFieldAllowed",
			req:  `{"externalId":null,"username":"amit","firstName":"Amit","email":"amit@example.com"}`,
		},
		{
			name: "UsernameMissing",
			req:  `{"firstName":"Amit","email":"amit@example.com"}`,
			want: rc(entity.UserNameRequired),
		},
		{
			name: "FirstNameBeforeEmailOrPhone",
			req:  `{"username":"amit"}`,
			want: rc(entity.FirstNameRequired),
		},
		{
			name: "FirstNameNotString",
			req:  `{"username":"amit","firstName":42,"email":"amit@example.com"}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of firstName should be String.",
		},
		{
			name: "RolesNotList",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","roles":"PUBLIC"}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of roles should be List.",
		},
		{
			name: "LanguageNotList",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","language":"English"}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of language should be List.",
		},
		{
			name: "DobFormat",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","dob":"15-01-1990"}`,
			want: rc(entity.DateFormatError),
		},
		{
			name: "EmailOrPhoneRequired",
			req:  `{"username":"amit","firstName":"Amit","email":"  "}`,
			want: rc(entity.EmailOrPhoneRequired),
		},
		{
			name: "EmailFormat",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@"}`,
			want: rc(entity.EmailFormatError),
		},
		{
			name: "PhoneWithPlus",
			req:  `{"username":"amit","firstName":"Amit","phone":"+918123456789","phoneVerified":true}`,
			want: rc(entity.InvalidPhoneNumber),
		},
		{
			name: "PhoneFormat",
			req:  `{"username":"amit","firstName":"Amit","phone":"12345","phoneVerified":true}`,
			want: rc(entity.PhoneNoFormatError),
		},
		{
			name: "PhoneNotString",
			req:  `{"username":"amit","firstName":"Amit","phone":8123456789}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of phone should be String.",
		},
		{
			name: "CountryCodeFormat",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","countryCode":"+12345"}`,
			want: rc(entity.InvalidCountryCode),
		},
		{
			name: "PhoneVerifiedMissing",
			req:  `{"username":"amit","firstName":"Amit","phone":"8123456789"}`,
			want: rc(entity.PhoneVerifiedError),
		},
		{
			name: "PhoneVerifiedFalse",
			req:  `{"username":"amit","firstName":"Amit","phone":"8123456789","phoneVerified":false}`,
			want: rc(entity.PhoneVerifiedError),
		},
		{
			name: "PhoneVerifiedNotBoolean",
			req:  `{"username":"amit","firstName":"Amit","phone":"8123456789","phoneVerified":"true"}`,
			want: rc(entity.PhoneVerifiedError),
		},
		{
			name: "PhoneVerifiedIgnoredWithoutPhone",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","phoneVerified":false}`,
		},
		{
			name: "AddressNotList",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","address":{"city":"Pune"}}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of address should be List.",
		},
		{
			name: "AddressLine1Missing",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","address":[{"city":"Pune"}]}`,
			want: rc(entity.AddressError),
			msg:  "In address, addressLine1 is mandatory.",
		},
		{
			name: "AddressCityMissing",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","address":[{"addressLine1":"MG Road"}]}`,
			want: rc(entity.AddressError),
			msg:  "In address, city is mandatory.",
		},
		{
			name: "AddressTypeBlank",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","address":[{"addressLine1":"MG Road","city":"Pune","addType":""}]}`,
			want: rc(entity.AddressError),
			msg:  "In address, type is mandatory.",
		},
		{
			name: "AddressTypeUnknown",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","address":[{"addressLine1":"MG Road","city":"Pune","addType":"villa"}]}`,
			want: rc(entity.AddressTypeError),
		},
		{
			name: "AddressTypeCaseSensitive",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","address":[{"addressLine1":"MG Road","city":"Pune","addType":"Home"}]}`,
			want: rc(entity.AddressTypeError),
		},
		{
			name: "EducationNameMissing",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","education":[{"degree":"BSc"}]}`,
			want: rc(entity.EducationNameError),
		},
		{
			name: "EducationDegreeMissing",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","education":[{"name":"College"}]}`,
			want: rc(entity.EducationDegreeError),
		},
		{
			name: "EducationAddressContext",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","education":[{"name":"College","degree":"BSc","address":{"addressLine1":"Campus"}}]}`,
			want: rc(entity.AddressError),
			msg:  "In education, city is mandatory.",
		},
		{
			name: "EducationAddressNotMap",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","education":[{"name":"College","degree":"BSc","address":["Campus"]}]}`,
			want: rc(entity.DataTypeError),
			msg:  "Data type of address should be Map.",
		},
		{
			name: "JobJoiningDateFormat",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","jobProfile":[{"jobName":"Tutor","orgName":"School","joiningDate":"2015/06/01"}]}`,
			want: rc(entity.DateFormatError),
		},
		{
			name: "JobEndDateFormat",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","jobProfile":[{"jobName":"Tutor","orgName":"School","endDate":"2020-02-30"}]}`,
			want: rc(entity.DateFormatError),
		},
		{
			name: "JobNameMissing",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","jobProfile":[{"orgName":"School"}]}`,
			want: rc(entity.JobNameError),
		},
		{
			name: "JobOrgNameMissing",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","jobProfile":[{"jobName":"Tutor"}]}`,
			want: rc(entity.OrganisationNameError),
		},
		{
			name: "JobAddressContext",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","jobProfile":[{"jobName":"Tutor","orgName":"School","address":{"city":"Pune"}}]}`,
			want: rc(entity.AddressError),
			msg:  "In jobProfile, addressLine1 is mandatory.",
		},
		{
			name: "WebPagesEmpty",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","webPages":[]}`,
			want: rc(entity.InvalidWebPageData),
		},
		{
			name: "WebPagesNull",
			req:  `{"username":"amit","firstName":"Amit","email":"amit@example.com","webPages":null}`,
			want: rc(entity.InvalidWebPageData),
		},
	})
}
