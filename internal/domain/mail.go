package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type OverrideNoticeMailData struct {
	PostoName  string `json:"postoName"`
	ClientName string `json:"clientName"`
	Date       string `json:"date"`
	NewStatus  string `json:"newStatus"`
	ChangedBy  string `json:"changedBy"`
}
