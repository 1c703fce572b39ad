package feed

// NewGenericParser handles feeds with no special conventions, relying on the
// default title parsing.
func NewGenericParser(name, url string) Parser {
	return DefaultParser{FeedName: name, FeedURL: url}
}
