package enums

type UserStatus string

const (
	UserStatusGoodStanding UserStatus = "good_standing"
	UserStatusWarned       UserStatus = "warned"
	UserStatusSuspended    UserStatus = "suspended"
	UserStatusBanned       UserStatus = "banned"
)
