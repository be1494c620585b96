package entity

// Request field names.
const (
	KeyUsername           = "username"
	KeyRegisteredOrgID    = "registeredOrgId"
	KeyRootOrgID          = "rootOrgId"
	KeyChannel            = "channel"
	KeyProvider           = "provider"
	KeyIDType             = "idType"
	KeyExternalID         = "externalId"
	KeyExternalIDProvider = "externalIdProvider"
	KeyExternalIDType     = "externalIdType"
	KeyExternalIDs        = "externalIds"
	KeyUserID             = "userId"
	KeyID                 = "id"
	KeyFirstName          = "firstName"
	KeyEmail              = "email"
	KeyPhone              = "phone"
	KeyCountryCode        = "countryCode"
	KeyPhoneVerified      = "phoneVerified"
	KeyDOB                = "dob"
	KeyRoles              = "roles"
	KeyLanguage           = "language"
	KeyAddress            = "address"
	KeyEducation          = "education"
	KeyJobProfile         = "jobProfile"
	KeyWebPages           = "webPages"
	KeyAddressLine1       = "addressLine1"
	KeyCity               = "city"
	KeyAddType            = "addType"
	KeyIsDeleted          = "isDeleted"
	KeyName               = "name"
	KeyDegree             = "degree"
	KeyJobName            = "jobName"
	KeyOrgName            = "orgName"
	KeyJoiningDate        = "joiningDate"
	KeyEndDate            = "endDate"
	KeyOperation          = "operation"
	KeyPassword           = "password"
	KeyNewPassword        = "newPassword"
	KeyLoginID            = "loginId"
	KeyOrganisationID     = "organisationId"
	KeyPrivate            = "private"
	KeyPublic             = "public"
)

// Type names used in data type errors.
const (
	TypeList   = "List"
	TypeMap    = "Map"
	TypeString = "String"
)
