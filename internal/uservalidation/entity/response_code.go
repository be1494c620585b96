package entity

// ResponseCode is one entry of the fixed violation taxonomy.
// Template placeholders {0}..{2} appear in ascending order.
type ResponseCode struct {
	Name     string
	Code     string
	Template string
}

var (
	InvalidRequestParameter = ResponseCode{"invalidRequestParameter", "INVALID_REQUEST_PARAMETER", "Invalid parameter {0} in request."}
	UserNameRequired        = ResponseCode{"userNameRequired", "USERNAME_MISSING", "Username is mandatory."}
	FirstNameRequired       = ResponseCode{"firstNameRequired", "FIRST_NAME_MISSING", "First name is mandatory."}
	DataTypeError           = ResponseCode{"dataTypeError", "DATA_TYPE_ERROR", "Data type of {0} should be {1}."}
	DateFormatError         = ResponseCode{"dateFormatError", "DATE_FORMAT_ERROR", "Date format error."}
	EmailOrPhoneRequired    = ResponseCode{"emailorPhoneRequired", "EMAIL_OR_PHONE_MISSING", "Email or phone is mandatory."}
	EmailFormatError        = ResponseCode{"emailFormatError", "EMAIL_FORMAT_ERROR", "Email is invalid."}
	EducationNameError      = ResponseCode{"educationNameError", "EDUCATION_NAME_MISSING", "Education name is mandatory."}
	EducationDegreeError    = ResponseCode{"educationDegreeError", "EDUCATION_DEGREE_MISSING", "Education degree is mandatory."}
	JobNameError            = ResponseCode{"jobNameError", "JOB_NAME_MISSING", "Job name is mandatory."}
	OrganisationNameError   = ResponseCode{"organisationNameError", "ORGANISATION_NAME_MISSING", "Organisation name is mandatory."}
	InvalidWebPageData      = ResponseCode{"invalidWebPageData", "INVALID_WEBPAGE_DATA", "Invalid web page data."}
	AddressError            = ResponseCode{"addressError", "ADDRESS_ERROR", "In {0}, {1} is mandatory."}
	AddressTypeError        = ResponseCode{"addressTypeError", "ADDRESS_TYPE_ERROR", "Address type is invalid."}
	InvalidPhoneNumber      = ResponseCode{"invalidPhoneNumber", "INVALID_PHONE_NUMBER", "Please send phone number without '+' sign."}
	PhoneNoFormatError      = ResponseCode{"phoneNoFormatError", "PHONE_NUMBER_FORMAT_ERROR", "Phone number is invalid."}
	InvalidCountryCode      = ResponseCode{"invalidCountryCode", "INVALID_COUNTRY_CODE", "Country code is invalid."}
	PhoneVerifiedError      = ResponseCode{"phoneVerifiedError", "PHONE_VERIFIED_ERROR", "Phone verified status must be true."}
	AddressRequired         = ResponseCode{"addressRequired", "ADDRESS_REQUIRED_ERROR", "Address is mandatory."}
	EducationRequired       = ResponseCode{"educationRequired", "EDUCATION_REQUIRED_ERROR", "Education is mandatory."}
	JobDetailsRequired      = ResponseCode{"jobDetailsRequired", "JOB_DETAILS_REQUIRED_ERROR", "Job details are mandatory."}
	InvalidRootOrgID        = ResponseCode{"invalidRootOrganisationId", "INVALID_ROOT_ORGANIZATION", "Root organisation id is invalid."}
	InvalidValue            = ResponseCode{"invalidValue", "INVALID_VALUE", "Invalid {0}: {1}. Valid values are: {2}."}
	MandatoryParamsMissing  = ResponseCode{"mandatoryParamsMissing", "MANDATORY_PARAMETER_MISSING", "Mandatory parameter {0} is missing."}
	IDRequired              = ResponseCode{"idRequired", "ID_REQUIRED_ERROR", "Id is mandatory for deleted entries."}
	RolesRequired           = ResponseCode{"rolesRequired", "ROLES_MISSING", "Roles are mandatory."}
	LanguageRequired        = ResponseCode{"languageRequired", "LANGUAGE_MISSING", "Language is mandatory."}
	PasswordRequired        = ResponseCode{"passwordRequired", "PASSWORD_MISSING", "Password is mandatory."}
	NewPasswordRequired     = ResponseCode{"newPasswordRequired", "NEW_PASSWORD_MISSING", "New password is mandatory."}
	NewPasswordEmpty        = ResponseCode{"newPasswordEmpty", "NEW_PASSWORD_EMPTY", "New password cannot be empty."}
	LoginIDRequired         = ResponseCode{"loginIdRequired", "LOGIN_ID_MISSING", "Login id is mandatory."}
	UserIDRequired          = ResponseCode{"userIdRequired", "USER_ID_MISSING", "User id is mandatory."}
	InvalidData             = ResponseCode{"invalidData", "INVALID_REQUESTED_DATA", "Requested data for this operation is not valid."}
	UsernameOrUserIDError   = ResponseCode{"usernameOrUserIdError", "USER_NAME_OR_ID_ERROR", "Please provide either username or userId."}
	VisibilityInvalid       = ResponseCode{"visibilityInvalid", "INVALID_VISIBILITY_REQUEST", "A field cannot be both private and public."}
	DependentParamsMissing  = ResponseCode{"dependentParamsMissing", "DEPENDENT_PARAMETER_MISSING", "Dependent parameters {0} must be provided together."}
	DuplicateExternalIDs    = ResponseCode{"duplicateExternalIds", "DUPLICATE_EXTERNAL_IDS", "Duplicate external IDs for given idType ({0}) and provider ({1})."}
)

// ResponseCodes lists the whole taxonomy.
var ResponseCodes = []ResponseCode{
	InvalidRequestParameter,
	UserNameRequired,
	FirstNameRequired,
	DataTypeError,
	DateFormatError,
	EmailOrPhoneRequired,
	EmailFormatError,
	EducationNameError,
	EducationDegreeError,
	JobNameError,
	OrganisationNameError,
	InvalidWebPageData,
	AddressError,
	AddressTypeError,
	InvalidPhoneNumber,
	PhoneNoFormatError,
	InvalidCountryCode,
	PhoneVerifiedError,
	AddressRequired,
	EducationRequired,
	JobDetailsRequired,
	InvalidRootOrgID,
	InvalidValue,
	MandatoryParamsMissing,
	IDRequired,
	RolesRequired,
	LanguageRequired,
	PasswordRequired,
	NewPasswordRequired,
	NewPasswordEmpty,
	LoginIDRequired,
	UserIDRequired,
	InvalidData,
	UsernameOrUserIDError,
	VisibilityInvalid,
	DependentParamsMissing,
	DuplicateExternalIDs,
}

// ResponseCodeByName looks up a code by its catalog name.
func ResponseCodeByName(name string) (ResponseCode, bool) {
	for _, rc := range ResponseCodes {
		if rc.Name == name {
			return rc, true
		}
	}
	return ResponseCode{}, false
}
