package constvars

const (
	LoginSuccessMessage   = "login succeeded"
	RefreshSuccessMessage = "session refreshed"
	LogoutSuccessMessage  = "logout succeeded"

	FindPatientsSuccessMessage     = "patients fetched"
	FindPatientSuccessMessage      = "patient fetched"
	CreatePatientSuccessMessage    = "patient created"
	UpdatePatientSuccessMessage    = "patient updated"
	DischargePatientSuccessMessage = "patient discharged"
	DeletePatientSuccessMessage    = "patient deleted"

	FindInventorySuccessMessage   = "%s fetched"
	CreateInventorySuccessMessage = "%s created"
	UpdateStockSuccessMessage     = "%s stock updated"
	DeleteInventorySuccessMessage = "%s deleted"

	FindDiagnosesSuccessMessage   = "diagnoses fetched"
	CreateDiagnosisSuccessMessage = "diagnosis created"
	UpdateDiagnosisSuccessMessage = "diagnosis updated"
	DeleteDiagnosisSuccessMessage = "diagnosis deleted"

	FindCombinationsSuccessMessage         = "combinations fetched"
	CreateCombinationSuccessMessage        = "combination created"
	CreateCombinationInGroupSuccessMessage = "combination created and added to group"
	UpdateCombinationSuccessMessage        = "combination updated"
	DeleteCombinationSuccessMessage        = "combination deleted"

	FindReservesSuccessMessage    = "reserve entries fetched"
	TransferReserveSuccessMessage = "stock moved to reserve"

	FindNotificationsSuccessMessage  = "notifications fetched"
	CreateNotificationSuccessMessage = "notification created"
	ReadNotificationSuccessMessage   = "notification marked as read"
	DeleteNotificationSuccessMessage = "notification deleted"

	FindActiveSpecificationSuccessMessage  = "active specification fetched"
	FindSpecificationHistorySuccessMessage = "specification history fetched"
	FindSpecificationSuccessMessage        = "specification fetched"
	AddCostsSuccessMessage                 = "costs submitted"
	FindPeriodsSuccessMessage              = "specification periods fetched"
	StoreExportSuccessMessage              = "specification export stored"
)
