package domain

// SiteStatus is the lifecycle state of a chantier. Transitions are free-form
// user edits; no guard logic applies.
type SiteStatus string

const (
	SiteQuote      SiteStatus = "Quote"
	SiteInProgress SiteStatus = "InProgress"
	SiteDone       SiteStatus = "Done"
	SiteCancelled  SiteStatus = "Cancelled"
)

// SiteStatuses lists the accepted values in display order.
var SiteStatuses = []SiteStatus{SiteQuote, SiteInProgress, SiteDone, SiteCancelled}

func ValidSiteStatus(s SiteStatus) bool {
	for _, v := range SiteStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "Pending"
	QuoteAccepted QuoteStatus = "Accepted"
	QuoteRejected QuoteStatus = "Rejected"
)

// RequestSource says where a material request is fulfilled from.
type RequestSource string

const (
	SourceDepot    RequestSource = "Depot"
	SourceSupplier RequestSource = "Supplier"
)

type RequestStatus string

const (
	RequestTaken   RequestStatus = "Taken"
	RequestToOrder RequestStatus = "ToOrder"
)

// Site is one renovation job ("chantier"), tracked from quote to completion.
// Dates are kept as entered; use ParseDate when ordering or arithmetic is
// needed so that unparsable input survives a load/save round trip.
type Site struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Client      string     `json:"client"`
	Status      SiteStatus `json:"status"`
	Team        string     `json:"team"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	WorkType    string     `json:"work_type"`
	Material    string     `json:"material"`
	Surface     float64    `json:"surface_m2"`
	Coats       int        `json:"coats"`
	Quantity    float64    `json:"quantity"`
	Cost        float64    `json:"cost"`
	QuotedPrice float64    `json:"quoted_price"`
	CrewSize    int        `json:"crew_size"`
	Lots        []string   `json:"lots"`
	Notes       string     `json:"notes"`
}

// Client.Status is optional: some data files carry it, some predate it. An
// empty string means the column was never filled.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status,omitempty"`
}

type Invoice struct {
	ID        string        `json:"id"`
	Number    string        `json:"number"`
	Site      string        `json:"site"`
	Total     float64       `json:"total"`
	VAT       float64       `json:"vat_percent"`
	IssueDate string        `json:"issue_date"`
	DueDate   string        `json:"due_date"`
	Status    InvoiceStatus `json:"status"`
}

type Quote struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	Client     string      `json:"client"`
	Total      float64     `json:"total"`
	IssueDate  string      `json:"issue_date"`
	ValidUntil string      `json:"valid_until"`
	Status     QuoteStatus `json:"status"`
}

// StockItem is one depot inventory line. Quantity and prices arrive from
// files as free-form text ("9,00 €"); the tabular codec sanitizes them into
// numbers on load.
type StockItem struct {
	ID             string  `json:"id"`
	Reference      string  `json:"reference"`
	Label          string  `json:"label"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	PurchasePrice  float64 `json:"purchase_price"`
	AlertThreshold float64 `json:"alert_threshold"`
}

// MaterialRequest is a line of material needed on a site, either already
// taken from depot stock or still to be ordered from a supplier.
type MaterialRequest struct {
	ID          string        `json:"id"`
	SiteID      string        `json:"site_id"`
	SiteName    string        `json:"site_name"`
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Quantity    float64       `json:"quantity"`
	Unit        string        `json:"unit"`
	Source      RequestSource `json:"source"`
	Status      RequestStatus `json:"status"`
}

// StockMovement is declared for data-file compatibility; no workflow writes
// it today.
type StockMovement struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Reference string  `json:"reference"`
	Label     string  `json:"label"`
	Quantity  float64 `json:"quantity"`
	Type      string  `json:"type"`
	SiteID    string  `json:"site_id"`
}
