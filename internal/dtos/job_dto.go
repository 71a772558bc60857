package dtos

type CompanyRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// JobCreationRequest carries the full field set for POST /api/jobs.
// Required-field checks live in the service so the error messages stay
// under our control instead of the binding validator's.
type JobCreationRequest struct {
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Salary      string          `json:"salary"`
	Company     *CompanyRequest `json:"company"`
}

// CompanyUpdate holds optional company fields for a partial edit.
// Nil means "leave as is".
type CompanyUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
}

// JobUpdateRequest is the partial field set for PUT /api/jobs/:id.
type JobUpdateRequest struct {
	Title       *string        `json:"title"`
	Type        *string        `json:"type"`
	Location    *string        `json:"location"`
	Description *string        `json:"description"`
	Salary      *string        `json:"salary"`
	Company     *CompanyUpdate `json:"company"`
}

// IsEmpty reports whether the payload names no field at all.
func (r *JobUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Type == nil && r.Location == nil &&
		r.Description == nil && r.Salary == nil && r.Company == nil
}
