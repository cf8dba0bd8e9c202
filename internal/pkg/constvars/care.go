package constvars

// Resource names double as cache namespaces and as path segments on the care backend.
const (
	ResourceAuth           = "auth"
	ResourcePatients       = "patients"
	ResourceMedicines      = "medicines"
	ResourceArticles       = "articles"
	ResourceDiagnoses      = "diagnoses"
	ResourceCombinations   = "combinations"
	ResourceReserves       = "reserves"
	ResourceNotifications  = "notifications"
	ResourceSpecifications = "specifications"
)

const (
	CarePathLogin                   = "/auth/login"
	CarePathRefresh                 = "/auth/refresh"
	CarePathLogout                  = "/auth/logout"
	CarePathPatientDischarge        = "/patients/%s/discharge"
	CarePathStock                   = "/%s/%s/stock"
	CarePathCombinationGroup        = "/combination-groups/%s/combinations"
	CarePathActiveSpecification     = "/specifications/patient/%s/active"
	CarePathSpecificationHistory    = "/specifications/patient/%s/history"
	CarePathSpecificationByID       = "/specifications/%s"
	CarePathSpecificationAddCosts   = "/specifications/%s/add-costs"
	CarePathSpecificationFuturePlan = "/specifications/patient/%s/future-periods"
)

const (
	QueryParamPatientID = "patientId"
	QueryParamFormat    = "format"
)

const (
	URLParamPatientID       = "patientId"
	URLParamSpecificationID = "specificationId"
	URLParamResourceID      = "id"
	URLParamGroupID         = "groupId"
	URLParamKind            = "kind"
)

// Line item categories as tagged by the care backend.
const (
	ItemTypeMedicine    = "medicine"
	ItemTypeCombination = "combination"
	ItemTypeArticle     = "article"
	ItemTypeLodging     = "lodging"
	ItemTypeExtra       = "extra"
	ItemTypeUnknown     = "unknown"
)

const (
	PlaceholderUnknownMedicine = "Unknown medicine"
	PlaceholderUnknownAnalysis = "Unknown analysis"
	PlaceholderUnknownArticle  = "Unknown article"
	PlaceholderLodging         = "Lodging"
	PlaceholderExtraCost       = "Extra cost"
	PlaceholderUnknownItem     = "Unknown item"
)

const (
	CombinationQuantity = "1"
)

const (
	MutationActionCreate    = "create"
	MutationActionUpdate    = "update"
	MutationActionDelete    = "delete"
	MutationActionDischarge = "discharge"
	MutationActionTransfer  = "transfer"
	MutationActionAddCosts  = "add_costs"
	MutationActionStock     = "stock"
)

// UnknownYear groups periods whose start date cannot be read.
const (
	UnknownYear      = 0
	UnknownYearLabel = "unknown"
)
