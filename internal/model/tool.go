package model

// Status describes the operational state of a cataloged tool.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusWarning Status = "warning"
)

// Pricing describes the cost model of a cataloged tool.
type Pricing string

const (
	PricingFree     Pricing = "Free"
	PricingFreemium Pricing = "Freemium"
	PricingPaid     Pricing = "Paid"
)

// Tool is a single catalog entry. Entries are created by the backend seed or
// the static fallback list and are never mutated by the client; the working
// list is replaced wholesale on each successful fetch.
type Tool struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Status       Status  `json:"status"`
	URL          string  `json:"url"`
	Pricing      Pricing `json:"pricing"`
	Registration bool    `json:"registration"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// CategoryAll is the sentinel category that matches every tool.
const CategoryAll = "All"

// Categories is the fixed category enumeration shared by the filter UI and
// the fallback catalog. The first entry is the "All" sentinel.
var Categories = []string{
	CategoryAll,
	"Username",
	"Email",
	"Social Media",
	"Network",
	"Analysis",
	"People",
	"Images",
	"Documents",
	"Domains",
	"Geolocation",
	"Archive Tools",
	"Reconnaissance",
	"Automation",
	"Threat Intelligence",
	"AI-Powered Tools",
	"Dark Web Search",
	"Digital Currency",
	"Transportation Tracking",
	"Encoding/Decoding",
	"Dating Platforms",
}

// FindTool returns the tool with the given ID from the working list,
// or nil if no such tool exists.
func FindTool(tools []Tool, id int) *Tool {
	for i := range tools {
		if tools[i].ID == id {
			return &tools[i]
		}
	}
	return nil
}
