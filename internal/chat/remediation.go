package chat

import (
	apierrors "firechat/internal/errors"
)

// Remediation builds the in-thread bot message shown when an exchange
// fails. Each failure category gets its own heading and suggestions; the
// bullets render through the same markup path as normal replies.
func Remediation(err error) string {
	switch apierrors.Classify(err) {
	case apierrors.CategoryTimeout:
		return "⏱️ **Request Timeout**\n\n" +
			"Your request took longer than expected and was cancelled.\n" +
			"• Break your question into smaller parts\n" +
			"• Rephrase with simpler terms\n" +
			"• Check your connection and resend"

	case apierrors.CategoryServiceStarting:
		return "🚀 **Agent Starting Up**\n\n" +
			"The backend is still getting its tools ready.\n" +
			"• Wait a few seconds\n" +
			"• Send your message again\n" +
			"• Run the status command if this keeps happening"

	case apierrors.CategoryServerError:
		return "🔧 **Server Error**\n\n" +
			"The agent hit a problem while processing your request.\n" +
			"• Try rephrasing your question\n" +
			"• Try a simpler request\n" +
			"• Wait a moment and resend"

	case apierrors.CategoryNotFound:
		return "🔎 **Endpoint Not Found**\n\n" +
			"The chat endpoint isn't where this client expects it.\n" +
			"• Make sure the backend is up to date\n" +
			"• Check the configured host\n" +
			"• Resend once the backend is fixed"

	case apierrors.CategoryNetwork:
		return "📡 **Connection Failed**\n\n" +
			"I couldn't reach the agent backend at all.\n" +
			"• Make sure the backend is running (locally: port 5000)\n" +
			"• Check your network connection\n" +
			"• Resend when the backend is reachable"

	default:
		return "⚠️ **Something Went Wrong**\n\n" +
			"The request failed in an unexpected way.\n" +
			"• Try sending your message again\n" +
			"• Rephrase if the problem persists\n" +
			"• Check the backend logs for details"
	}
}
