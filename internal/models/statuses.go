package models

type UserRole string
type GigStatus string
type ApplicationStatus string
type ContactMethod string
type NotificationType string

const (
	UserRoleBand  UserRole = "band"
	UserRoleVenue UserRole = "venue"

	GigStatusOpen      GigStatus = "open"
	GigStatusFilled    GigStatus = "filled"
	GigStatusCancelled GigStatus = "cancelled"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusDeclined ApplicationStatus = "declined"

	ContactMethodWhatsapp  ContactMethod = "whatsapp"
	ContactMethodInstagram ContactMethod = "instagram"
	ContactMethodEmail     ContactMethod = "email"

	NotificationTypeApplicationAccepted NotificationType = "application_accepted"
	NotificationTypeNewGig              NotificationType = "new_gig"
	NotificationTypeSystem              NotificationType = "system"
)
