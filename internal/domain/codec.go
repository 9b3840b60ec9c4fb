package domain

// Column lists and record codecs for the tabular files. Every entity maps to
// a flat map[string]string row; numeric fields are sanitized on decode so the
// rest of the program only sees numbers. Unknown columns carried by a file
// are preserved by the store, not by these codecs.

var SiteColumns = []string{
	"id", "name", "client", "status", "team",
	"start_date", "end_date", "work_type", "material",
	"surface_m2", "coats", "quantity", "cost",
	"quoted_price", "crew_size", "lots", "notes",
}

func (s Site) Record() map[string]string {
	return map[string]string{
		"id":           s.ID,
		"name":         s.Name,
		"client":       s.Client,
		"status":       string(s.Status),
		"team":         s.Team,
		"start_date":   s.StartDate,
		"end_date":     s.EndDate,
		"work_type":    s.WorkType,
		"material":     s.Material,
		"surface_m2":   FormatDecimal(s.Surface),
		"coats":        FormatInt(s.Coats),
		"quantity":     FormatDecimal(s.Quantity),
		"cost":         FormatDecimal(s.Cost),
		"quoted_price": FormatDecimal(s.QuotedPrice),
		"crew_size":    FormatInt(s.CrewSize),
		"lots":         JoinLots(s.Lots),
		"notes":        s.Notes,
	}
}

func SiteFromRecord(r map[string]string) Site {
	return Site{
		ID:          r["id"],
		Name:        r["name"],
		Client:      r["client"],
		Status:      SiteStatus(r["status"]),
		Team:        r["team"],
		StartDate:   r["start_date"],
		EndDate:     r["end_date"],
		WorkType:    r["work_type"],
		Material:    r["material"],
		Surface:     ParseDecimal(r["surface_m2"]),
		Coats:       ParseInt(r["coats"]),
		Quantity:    ParseDecimal(r["quantity"]),
		Cost:        ParseDecimal(r["cost"]),
		QuotedPrice: ParseDecimal(r["quoted_price"]),
		CrewSize:    ParseInt(r["crew_size"]),
		Lots:        SplitLots(r["lots"]),
		Notes:       r["notes"],
	}
}

var ClientColumns = []string{"id", "name", "email", "phone", "address", "status"}

func (c Client) Record() map[string]string {
	return map[string]string{
		"id":      c.ID,
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"address": c.Address,
		"status":  c.Status,
	}
}

func ClientFromRecord(r map[string]string) Client {
	return Client{
		ID:      r["id"],
		Name:    r["name"],
		Email:   r["email"],
		Phone:   r["phone"],
		Address: r["address"],
		Status:  r["status"],
	}
}

var InvoiceColumns = []string{
	"id", "number", "site", "total", "vat_percent", "issue_date", "due_date", "status",
}

func (i Invoice) Record() map[string]string {
	return map[string]string{
		"id":          i.ID,
		"number":      i.Number,
		"site":        i.Site,
		"total":       FormatDecimal(i.Total),
		"vat_percent": FormatDecimal(i.VAT),
		"issue_date":  i.IssueDate,
		"due_date":    i.DueDate,
		"status":      string(i.Status),
	}
}

func InvoiceFromRecord(r map[string]string) Invoice {
	return Invoice{
		ID:        r["id"],
		Number:    r["number"],
		Site:      r["site"],
		Total:     ParseDecimal(r["total"]),
		VAT:       ParseDecimal(r["vat_percent"]),
		IssueDate: r["issue_date"],
		DueDate:   r["due_date"],
		Status:    InvoiceStatus(r["status"]),
	}
}

var QuoteColumns = []string{
	"id", "number", "client", "total", "issue_date", "valid_until", "status",
}

func (q Quote) Record() map[string]string {
	return map[string]string{
		"id":          q.ID,
		"number":      q.Number,
		"client":      q.Client,
		"total":       FormatDecimal(q.Total),
		"issue_date":  q.IssueDate,
		"valid_until": q.ValidUntil,
		"status":      string(q.Status),
	}
}

func QuoteFromRecord(r map[string]string) Quote {
	return Quote{
		ID:         r["id"],
		Number:     r["number"],
		Client:     r["client"],
		Total:      ParseDecimal(r["total"]),
		IssueDate:  r["issue_date"],
		ValidUntil: r["valid_until"],
		Status:     QuoteStatus(r["status"]),
	}
}

var StockColumns = []string{
	"id", "reference", "label", "category", "quantity", "unit", "purchase_price", "alert_threshold",
}

func (s StockItem) Record() map[string]string {
	return map[string]string{
		"id":              s.ID,
		"reference":       s.Reference,
		"label":           s.Label,
		"category":        s.Category,
		"quantity":        FormatDecimal(s.Quantity),
		"unit":            s.Unit,
		"purchase_price":  FormatDecimal(s.PurchasePrice),
		"alert_threshold": FormatDecimal(s.AlertThreshold),
	}
}

func StockItemFromRecord(r map[string]string) StockItem {
	return StockItem{
		ID:             r["id"],
		Reference:      r["reference"],
		Label:          r["label"],
		Category:       r["category"],
		Quantity:       ParseDecimal(r["quantity"]),
		Unit:           r["unit"],
		PurchasePrice:  ParseDecimal(r["purchase_price"]),
		AlertThreshold: ParseDecimal(r["alert_threshold"]),
	}
}

var RequestColumns = []string{
	"id", "site_id", "site_name", "reference", "description", "quantity", "unit", "source", "status",
}

func (m MaterialRequest) Record() map[string]string {
	return map[string]string{
		"id":          m.ID,
		"site_id":     m.SiteID,
		"site_name":   m.SiteName,
		"reference":   m.Reference,
		"description": m.Description,
		"quantity":    FormatDecimal(m.Quantity),
		"unit":        m.Unit,
		"source":      string(m.Source),
		"status":      string(m.Status),
	}
}

func MaterialRequestFromRecord(r map[string]string) MaterialRequest {
	return MaterialRequest{
		ID:          r["id"],
		SiteID:      r["site_id"],
		SiteName:    r["site_name"],
		Reference:   r["reference"],
		Description: r["description"],
		Quantity:    ParseDecimal(r["quantity"]),
		Unit:        r["unit"],
		Source:      RequestSource(r["source"]),
		Status:      RequestStatus(r["status"]),
	}
}

var MovementColumns = []string{
	"id", "date", "reference", "label", "quantity", "type", "site_id",
}

func (m StockMovement) Record() map[string]string {
	return map[string]string{
		"id":        m.ID,
		"date":      m.Date,
		"reference": m.Reference,
		"label":     m.Label,
		"quantity":  FormatDecimal(m.Quantity),
		"type":      m.Type,
		"site_id":   m.SiteID,
	}
}

func StockMovementFromRecord(r map[string]string) StockMovement {
	return StockMovement{
		ID:        r["id"],
		Date:      r["date"],
		Reference: r["reference"],
		Label:     r["label"],
		Quantity:  ParseDecimal(r["quantity"]),
		Type:      r["type"],
		SiteID:    r["site_id"],
	}
}
