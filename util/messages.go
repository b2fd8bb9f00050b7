package util

const (
	BOOKING_CREATED            = "Booking created successfully"
	BOOKING_FETCHED            = "Booking fetched successfully"
	BOOKINGS_FETCHED           = "Bookings fetched successfully"
	BOOKING_STATUS_UPDATED     = "Booking status updated successfully"
	BOOKING_DETAILS_UPDATED    = "Booking details updated successfully"
	BOOKING_DELETED            = "Booking deleted successfully"
	BOOKING_NOT_FOUND          = "Booking not found"
	INVALID_BOOKING_ID         = "Invalid booking ID"
	INVALID_BOOKING_STATUS     = "Invalid booking status"
	EMPTY_BOOKING_UPDATE       = "At least one of checkInDate, checkOutDate or description is required"
	CHECKOUT_BEFORE_CHECKIN    = "checkOutDate must not be before checkInDate"
	CABIN_CREATED              = "Cabin created successfully"
	CABIN_FETCHED              = "Cabin fetched successfully"
	CABINS_FETCHED             = "Cabins fetched successfully"
	CABIN_UPDATED              = "Cabin updated successfully"
	CABIN_DELETED              = "Cabin deleted successfully"
	CABIN_NOT_FOUND            = "Cabin not found"
	CABIN_NAME_EXISTS          = "A cabin with this name already exists."
	INVALID_CABIN_ID           = "Invalid cabin ID format"
	TREATMENT_CREATED          = "Treatment created successfully"
	TREATMENTS_FETCHED         = "Treatments fetched successfully"
	TREATMENT_UPDATED          = "Treatment updated successfully"
	TREATMENT_DELETED          = "Treatment deleted successfully"
	TREATMENT_NOT_FOUND        = "Treatment not found"
	TREATMENT_NAME_EXISTS      = "A treatment with this name already exists."
	INVALID_TREATMENT_ID       = "Invalid treatment ID format"
	EMPTY_UPDATE               = "No fields provided to update"
	PROFILE_FETCHED            = "Profile fetched successfully"
	USERS_FETCHED              = "Users fetched successfully"
	EMPLOYEES_FETCHED          = "Employees fetched successfully"
	USER_DELETED               = "User deactivated successfully"
	USER_NOT_FOUND             = "User not found"
	INVALID_USER_ID            = "Invalid user ID"
	INVALID_ROLE               = "Invalid role"
	EMAIL_EXISTS               = "A user with this email already exists."
	STAFF_CREATED              = "Account created successfully"
	IMAGE_UPLOADED             = "Image uploaded successfully"
	IMAGE_REQUIRED             = "An image file is required"
	IMAGE_INVALID_TYPE         = "Only image uploads are allowed"
	IMAGE_TOO_LARGE            = "Image exceeds the maximum allowed size"
	IMAGE_UPLOAD_FAILED        = "Image upload failed"
	NOT_AUTHENTICATED          = "Not authenticated or user role is missing."
	NO_TOKEN                   = "Access denied. No token provided."
	INVALID_TOKEN              = "Invalid or expired token."
	FORBIDDEN                  = "Forbidden. You do not have the required permissions."
	NOT_BOOKING_OWNER          = "You can only manage your own bookings"
	INTERNAL_SERVER_ERROR      = "Something went wrong"
	INVALID_DATE               = "Invalid date"
	INVALID_QUERY_PARAMETERS   = "Invalid query parameters"
	INVALID_REQUEST_BODY       = "Invalid request body"
	ILLEGAL_STATUS_TRANSITION  = "Booking status cannot change from %s to %s"
	MEDIA_UPLOADER_UNAVAILABLE = "Media uploads are not configured"
)

const (
	ACCOUNT_REGISTERED  = "Account registered successfully"
	LOGIN_SUCCESS       = "Logged in successfully"
	INVALID_CREDENTIALS = "Invalid email or password"
	ACCOUNT_INACTIVE    = "This account has been deactivated"
	ACCOUNT_LOCKED      = "Too many failed login attempts. Try again later."
)
