package models

// NewsItem is a structured news event emitted by the engine. Rendering the
// narrative text around it is the client's job.
type NewsItem struct {
	ID       int               `json:"id"`
	Year     int               `json:"year"`
	Week     int               `json:"week"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Author   string            `json:"author"`
	Category string            `json:"category"`
	Meta     map[string]string `json:"meta,omitempty"`
}

func (n NewsItem) clone() NewsItem {
	cp := n
	if n.Meta != nil {
		cp.Meta = make(map[string]string, len(n.Meta))
		for k, v := range n.Meta {
			cp.Meta[k] = v
		}
	}
	return cp
}
