package domain

// ContactDraft is the transient contact form input. Name, email and message
// are required; phone is optional. Messages are immutable once created.
type ContactDraft struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Reset returns the draft to its initial empty state.
func (d *ContactDraft) Reset() {
	*d = ContactDraft{}
}
