package commit

// Placeholder is shown for display fields whose source value is empty.
const Placeholder = "<unknown>"

// Commit is a single version-control revision record. It is a plain
// value; editing never mutates a caller's copy in place.
type Commit struct {
	Node        string `json:"node" yaml:"node"`
	Author      string `json:"author" yaml:"author"`
	AuthorEmail string `json:"author_email,omitempty" yaml:"author_email,omitempty"`
	Date        string `json:"date" yaml:"date"`
	Message     string `json:"message" yaml:"message"`
}

// WithMessage returns a copy of the commit with only the message
// replaced. The receiver is left untouched, so two editors holding the
// same record cannot clobber each other through aliasing.
func (c Commit) WithMessage(msg string) Commit {
	c.Message = msg
	return c
}

// DisplayAuthor formats the author line as "Name <email>". Either part
// may be missing; when both are, it falls back to the placeholder.
func (c Commit) DisplayAuthor() string {
	author := c.Author
	if c.AuthorEmail != "" {
		if author != "" {
			author += " "
		}
		author += "<" + c.AuthorEmail + ">"
	}
	if author == "" {
		return Placeholder
	}
	return author
}

// DisplayDate returns the pre-formatted date, or the placeholder when
// the record carries none.
func (c Commit) DisplayDate() string {
	if c.Date == "" {
		return Placeholder
	}
	return c.Date
}
