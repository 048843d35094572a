package session

import "github.com/nesaranaeem/qr-box/pkg/content"

// Inputs a type starts with when it is selected.
var defaultInputs = map[content.Type]content.Input{
	content.URL:   content.ValueInput("https://github.com/nesaranaeem"),
	content.Text:  content.ValueInput("I Am Nesar Ahmed Naeem. Full Stack Web Developer"),
	content.Email: content.ValueInput("example@email.com"),
	content.Phone: content.ValueInput("+1234567890"),
	content.Contact: content.ContactInput(content.ContactFields{
		Name:    "John Doe",
		Phone:   "+1234567890",
		Email:   "johndoe@example.com",
		Address: "123 Main St, City, Country",
	}),
}

// DefaultInput returns the input a session holds right after t is selected.
func DefaultInput(t content.Type) content.Input {
	return defaultInputs[t]
}
