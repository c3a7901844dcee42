package domain

// Patch types model partial updates: a nil field was absent from the
// request and must not touch the stored document, a non-nil field is
// written as-is. Changes returns only the set fields, keyed by the
// stored field name.

type ServicePatch struct {
	Title       *MultilingualText `json:"title,omitempty"`
	Description *MultilingualText `json:"description,omitempty"`
	Icon        *string           `json:"icon,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

func (p ServicePatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "title", p.Title)
	set(c, "description", p.Description)
	set(c, "icon", p.Icon)
	set(c, "order", p.Order)
	set(c, "active", p.Active)
	return c
}

type SectorPatch struct {
	Name        *MultilingualText `json:"name,omitempty"`
	Description *MultilingualText `json:"description,omitempty"`
	Image       *string           `json:"image,omitempty"`
	Stats       *string           `json:"stats,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

func (p SectorPatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "name", p.Name)
	set(c, "description", p.Description)
	set(c, "image", p.Image)
	set(c, "stats", p.Stats)
	set(c, "order", p.Order)
	set(c, "active", p.Active)
	return c
}

type AdvantagePatch struct {
	Title       *MultilingualText `json:"title,omitempty"`
	Description *MultilingualText `json:"description,omitempty"`
	Icon        *string           `json:"icon,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

func (p AdvantagePatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "title", p.Title)
	set(c, "description", p.Description)
	set(c, "icon", p.Icon)
	set(c, "order", p.Order)
	set(c, "active", p.Active)
	return c
}

type SolutionPatch struct {
	Title       *MultilingualText `json:"title,omitempty"`
	Description *MultilingualText `json:"description,omitempty"`
	PowerRange  *string           `json:"power_range,omitempty"`
	Brands      *string           `json:"brands,omitempty"`
	Timeline    *string           `json:"timeline,omitempty"`
	BudgetRange *string           `json:"budget_range,omitempty"`
	Icon        *string           `json:"icon,omitempty"`
	Popular     *bool             `json:"popular,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

func (p SolutionPatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "title", p.Title)
	set(c, "description", p.Description)
	set(c, "power_range", p.PowerRange)
	set(c, "brands", p.Brands)
	set(c, "timeline", p.Timeline)
	set(c, "budget_range", p.BudgetRange)
	set(c, "icon", p.Icon)
	set(c, "popular", p.Popular)
	set(c, "order", p.Order)
	set(c, "active", p.Active)
	return c
}

type ProjectPatch struct {
	Title       *MultilingualText `json:"title,omitempty"`
	Sector      *string           `json:"sector,omitempty"`
	Power       *string           `json:"power,omitempty"`
	Savings     *string           `json:"savings,omitempty"`
	Duration    *string           `json:"duration,omitempty"`
	FuelType    *string           `json:"fuel_type,omitempty"`
	Image       *string           `json:"image,omitempty"`
	Description *MultilingualText `json:"description,omitempty"`
	Featured    *bool             `json:"featured,omitempty"`
	Order       *int              `json:"order,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}

func (p ProjectPatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "title", p.Title)
	set(c, "sector", p.Sector)
	set(c, "power", p.Power)
	set(c, "savings", p.Savings)
	set(c, "duration", p.Duration)
	set(c, "fuel_type", p.FuelType)
	set(c, "image", p.Image)
	set(c, "description", p.Description)
	set(c, "featured", p.Featured)
	set(c, "order", p.Order)
	set(c, "active", p.Active)
	return c
}

type FAQPatch struct {
	Question *MultilingualText `json:"question,omitempty"`
	Answer   *MultilingualText `json:"answer,omitempty"`
	Order    *int              `json:"order,omitempty"`
	Active   *bool             `json:"active,omitempty"`
}

func (p FAQPatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "question", p.Question)
	set(c, "answer", p.Answer)
	set(c, "order", p.Order)
	set(c, "active", p.Active)
	return c
}

type SiteInfoPatch struct {
	CompanyName    *string `json:"company_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Address        *string `json:"address,omitempty"`
	WorkingHours   *string `json:"working_hours,omitempty"`
	EmergencyPhone *string `json:"emergency_phone,omitempty"`
}

func (p SiteInfoPatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "company_name", p.CompanyName)
	set(c, "phone", p.Phone)
	set(c, "email", p.Email)
	set(c, "address", p.Address)
	set(c, "working_hours", p.WorkingHours)
	set(c, "emergency_phone", p.EmergencyPhone)
	return c
}

type LeadPatch struct {
	Status *LeadStatus `json:"status,omitempty"`
	Notes  *string     `json:"notes,omitempty"`
}

func (p LeadPatch) Changes() map[string]any {
	c := map[string]any{}
	set(c, "status", p.Status)
	set(c, "notes", p.Notes)
	return c
}

func set[T any](c map[string]any, key string, v *T) {
	if v != nil {
		c[key] = *v
	}
}
