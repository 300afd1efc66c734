package templates

import "fmt"

// RenderProjectApprovedEmail notifies a project creator that their project went
// live.
func RenderProjectApprovedEmail(creatorName, projectTitle string) (subject, html, plain string) {
	subject = "Your project is live"
	plain = fmt.Sprintf("Hi %s,\n\nYour project \"%s\" has been approved and is now visible to the community. A team chat channel has been created for you.\n\nGood luck!", creatorName, projectTitle)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderProjectDeclinedEmail notifies a project creator that their submission
// was declined, with the moderator's reason.
func RenderProjectDeclinedEmail(creatorName, projectTitle, reason string) (subject, html, plain string) {
	subject = "Update on your project submission"
	plain = fmt.Sprintf("Hi %s,\n\nYour project \"%s\" was not approved.", creatorName, projectTitle)
	if reason != "" {
		plain += fmt.Sprintf("\n\nReason:\n%s", reason)
	}
	plain += "\n\nYou can revise and submit a new project at any time."
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderApplicationApprovedEmail welcomes an applicant onto a project team.
func RenderApplicationApprovedEmail(applicantName, projectTitle string) (subject, html, plain string) {
	subject = "You joined a project team"
	plain = fmt.Sprintf("Hi %s,\n\nYour application to \"%s\" was approved. You have been added to the team and its chat channel.", applicantName, projectTitle)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderApplicationDeclinedEmail notifies an applicant that the owner passed on
// their application.
func RenderApplicationDeclinedEmail(applicantName, projectTitle string) (subject, html, plain string) {
	subject = "Update on your project application"
	plain = fmt.Sprintf("Hi %s,\n\nYour application to \"%s\" was not accepted this time.\n\nThere are plenty of other projects looking for teammates.", applicantName, projectTitle)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderInvitationEmail invites a user to join a project team.
func RenderInvitationEmail(inviteeName, inviterName, projectTitle, acceptURL string) (subject, html, plain string) {
	subject = "You have been invited to a project"
	plain = fmt.Sprintf("Hi %s,\n\n%s has invited you to join the project \"%s\".\n\nAccept the invitation here:\n%s", inviteeName, inviterName, projectTitle, acceptURL)
	return subject, RenderGenericEmail(subject, plain), plain
}

// RenderProjectCompletedEmail congratulates a team member on project completion.
func RenderProjectCompletedEmail(memberName, projectTitle string) (subject, html, plain string) {
	subject = "Project completed"
	plain = fmt.Sprintf("Hi %s,\n\nThe project \"%s\" has been marked as completed. The team chat channel has been archived.\n\nThanks for building with us!", memberName, projectTitle)
	return subject, RenderGenericEmail(subject, plain), plain
}
