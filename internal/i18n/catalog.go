package i18n

// Message catalogs, keyed by base language. Namespaced keys follow the
// "namespace:section.name" convention used throughout the services.
var catalogs = map[string]map[string]string{
	"en": {
		"auth:register.success":     "Account registered successfully",
		"auth:register.emailExists": "This email is already registered",
		"auth:login.success":        "Logged in successfully",
		"auth:login.failed":         "Incorrect email or password",
		"auth:logout.success":       "Logged out successfully",
		"auth:token.refreshed":      "Token refreshed successfully",
		"auth:token.invalid":        "Invalid or expired token",
		"auth:forgotPassword.sent":  "Password reset email has been sent",
		"auth:resetPassword.success": "Password has been reset",
		"auth:password.weak":         "Password must be at least 6 characters",
		"auth:password.wrong":        "Current password is incorrect",

		"user:notFound":         "User not found",
		"user:updated":          "Profile updated successfully",
		"user:deleted":          "Account deleted",
		"user:restored":         "Account restored",
		"user:roleUpdated":      "User role updated",
		"user:avatarUpdated":    "Avatar updated",
		"user:address.added":    "Address added",
		"user:address.updated":  "Address updated",
		"user:address.removed":  "Address removed",
		"user:address.default":  "Default address updated",
		"user:address.notFound": "Address not found",
		"user:wishlist.added":   "Product added to wishlist",
		"user:wishlist.removed": "Product removed from wishlist",

		"validation:any.required": "{{field}} is required",
		"validation:string.empty": "{{field}} must not be empty",
		"validation:string.min":   "{{field}} is too short",
		"validation:email":        "{{field}} must be a valid email address",
		"validation:role.invalid": "{{field}} is not a valid role",
		"validation:invalid":      "{{field}} is invalid",

		"common:forbidden":     "You do not have permission to perform this action",
		"common:unauthorized":  "Authentication required",
		"common:internalError": "Something went wrong, please try again later",
		"common:badRequest":    "Invalid request data",
	},
	"vi": {
		"auth:register.success":     "Đăng ký tài khoản thành công",
		"auth:register.emailExists": "Email này đã được đăng ký",
		"auth:login.success":        "Đăng nhập thành công",
		"auth:login.failed":         "Email hoặc mật khẩu không đúng",
		"auth:logout.success":       "Đăng xuất thành công",
		"auth:token.refreshed":      "Làm mới token thành công",
		"auth:token.invalid":        "Token không hợp lệ hoặc đã hết hạn",
		"auth:forgotPassword.sent":  "Email đặt lại mật khẩu đã được gửi",
		"auth:resetPassword.success": "Mật khẩu đã được đặt lại",
		"auth:password.weak":         "Mật khẩu phải có ít nhất 6 ký tự",
		"auth:password.wrong":        "Mật khẩu hiện tại không đúng",

		"user:notFound":         "Không tìm thấy người dùng",
		"user:updated":          "Cập nhật hồ sơ thành công",
		"user:deleted":          "Tài khoản đã bị xóa",
		"user:restored":         "Tài khoản đã được khôi phục",
		"user:roleUpdated":      "Đã cập nhật vai trò người dùng",
		"user:avatarUpdated":    "Đã cập nhật ảnh đại diện",
		"user:address.added":    "Đã thêm địa chỉ",
		"user:address.updated":  "Đã cập nhật địa chỉ",
		"user:address.removed":  "Đã xóa địa chỉ",
		"user:address.default":  "Đã cập nhật địa chỉ mặc định",
		"user:address.notFound": "Không tìm thấy địa chỉ",
		"user:wishlist.added":   "Đã thêm sản phẩm vào danh sách yêu thích",
		"user:wishlist.removed": "Đã xóa sản phẩm khỏi danh sách yêu thích",

		"validation:any.required": "{{field}} là bắt buộc",
		"validation:string.empty": "{{field}} không được để trống",
		"validation:string.min":   "{{field}} quá ngắn",
		"validation:email":        "{{field}} phải là địa chỉ email hợp lệ",
		"validation:role.invalid": "{{field}} không phải vai trò hợp lệ",
		"validation:invalid":      "{{field}} không hợp lệ",

		"common:forbidden":     "Bạn không có quyền thực hiện hành động này",
		"common:unauthorized":  "Yêu cầu xác thực",
		"common:internalError": "Đã xảy ra lỗi, vui lòng thử lại sau",
		"common:badRequest":    "Dữ liệu yêu cầu không hợp lệ",
	},
}
