package kafka

const (
	TopicScoreRequests      = "cvss-score-requests"
	TopicCVSSScored         = "cvss.scored"
	TopicNotificationEvents = "notification-events"
)
