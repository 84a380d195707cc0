package constvars

const (
	URLParamID          = "id"
	URLParamUserID      = "userId"
	URLParamName        = "name"
	URLParamObjectName  = "objectName"
	URLQueryParamDate   = "date"
	URLQueryParamType   = "type"
	FormFieldAttachment = "attachments"
	FormFieldReceipt    = "receipt"
	FormFieldPatient    = "patient"
	FormFieldType       = "type"
	FormFieldEntity     = "entity"
	FormFieldContent    = "content"
	FormFieldAmount     = "amount"
	FormFieldStatus     = "status"
	FormFieldMethod     = "method"
)
