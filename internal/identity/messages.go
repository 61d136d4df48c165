package identity

// providerMessages maps provider error codes to user-facing text.
var providerMessages = map[string]string{
	"auth/invalid-email":                           "Invalid email address",
	"auth/user-disabled":                           "This account has been disabled",
	"auth/user-not-found":                          "No account found with this email",
	"auth/wrong-password":                          "Incorrect password",
	"auth/email-already-in-use":                    "An account with this email already exists",
	"auth/weak-password":                           "Password is too weak",
	"auth/popup-closed-by-user":                    "The sign-in popup was closed before completing the sign in",
	"auth/cancelled-popup-request":                 "Popup request was cancelled. Please try again",
	"auth/account-exists-with-different-credential": "An account already exists with the same email address",
	"auth/operation-not-allowed":                   "This sign-in method is not enabled for this project",
}

// ProviderMessage translates a provider error code into a message safe to
// show to an end user.
func ProviderMessage(code string) string {
	if code == "" {
		return "Authentication failed. Please try again."
	}
	if msg, ok := providerMessages[code]; ok {
		return msg
	}
	return "Authentication error: " + code
}
