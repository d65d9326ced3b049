package export

// Share is what gets handed to a platform share sheet
type Share struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mimeType"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

func NewShare(format Format) Share {
	return Share{
		Filename: "ai-camera." + format.Extension(),
		MIMEType: format.MIMEType(),
		Title:    "AI Camera Photo",
		Text:     "Check out my AI-enhanced photo!",
	}
}
