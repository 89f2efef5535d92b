package enums

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusInReview  ReportStatus = "in_review"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusEscalated ReportStatus = "escalated"
)

type ReportReason string

const (
	ReportReasonInappropriate ReportReason = "inappropriate_content"
	ReportReasonHateSpeech    ReportReason = "hate_speech"
	ReportReasonCopyright     ReportReason = "copyright_violation"
	ReportReasonSpam          ReportReason = "spam_advertising"
	ReportReasonMisinfo       ReportReason = "misinformation"
	ReportReasonOther         ReportReason = "other"
)
