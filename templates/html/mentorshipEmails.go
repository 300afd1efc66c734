package templates

import "fmt"

// RenderSessionRequestedEmail notifies a mentor that a mentee has requested
// a mentorship session.
func RenderSessionRequestedEmail(mentorName, menteeName, message string) (subject, html, plain string) {
	subject = "New mentorship request"
	plain = fmt.Sprintf("Hi %s,\n\n%s has requested a mentorship session with you.", mentorName, menteeName)
	if message != "" {
		plain += fmt.Sprintf("\n\nTheir message:\n%s", message)
	}
	plain += "\n\nLog in to approve or decline the request."
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderSessionApprovedEmail notifies a mentee that their mentor approved the
// mentorship session.
func RenderSessionApprovedEmail(menteeName, mentorName string) (subject, html, plain string) {
	subject = "Your mentorship request was approved"
	plain = fmt.Sprintf("Hi %s,\n\n%s has approved your mentorship request. The mentorship is now active.\n\nHead over to the platform to book your first session.", menteeName, mentorName)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderSessionDeclinedEmail notifies a mentee that their request was declined.
func RenderSessionDeclinedEmail(menteeName, mentorName string) (subject, html, plain string) {
	subject = "Update on your mentorship request"
	plain = fmt.Sprintf("Hi %s,\n\n%s is unable to take on your mentorship request at this time.\n\nYou can browse other available mentors on the platform.", menteeName, mentorName)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderSessionCompletedEmail notifies a mentee that the mentorship was marked
// completed.
func RenderSessionCompletedEmail(menteeName, mentorName string) (subject, html, plain string) {
	subject = "Your mentorship has been completed"
	plain = fmt.Sprintf("Hi %s,\n\nYour mentorship with %s has been marked as completed. Congratulations on finishing!\n\nIf you have more to cover, your mentor can reactivate the mentorship at any time.", menteeName, mentorName)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderInactivityWarningEmail warns both parties that a mentorship will be
// closed if it stays inactive through the grace period.
func RenderInactivityWarningEmail(recipientName string, inactiveDays, graceDays int) (subject, html, plain string) {
	subject = "Your mentorship is at risk of being closed"
	plain = fmt.Sprintf("Hi %s,\n\nYour mentorship has had no recorded contact for %d days. If there is no activity within the next %d days it will be closed automatically.\n\nReach out to your mentorship partner to keep it active.", recipientName, inactiveDays, graceDays)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderInactivityClosedEmail informs both parties that a mentorship was closed
// for inactivity.
func RenderInactivityClosedEmail(recipientName string) (subject, html, plain string) {
	subject = "Your mentorship has been closed"
	plain = fmt.Sprintf("Hi %s,\n\nYour mentorship has been closed due to prolonged inactivity.\n\nYou are welcome to start a new mentorship whenever you are ready.", recipientName)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderBookingConfirmedEmail confirms a booked time slot to the mentee.
func RenderBookingConfirmedEmail(menteeName, mentorName, slotDisplay, date string) (subject, html, plain string) {
	subject = "Your session is booked"
	plain = fmt.Sprintf("Hi %s,\n\nYour session with %s is confirmed for %s on %s.\n\nSee you there!", menteeName, mentorName, slotDisplay, date)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderBookingCancelledEmail notifies the other party that a booking was
// cancelled.
func RenderBookingCancelledEmail(recipientName, otherName, slotDisplay, date string) (subject, html, plain string) {
	subject = "A session was cancelled"
	plain = fmt.Sprintf("Hi %s,\n\nYour session with %s scheduled for %s on %s has been cancelled.", recipientName, otherName, slotDisplay, date)
	return subject, RenderGenericEmail(subject, plain), plain
}
