package dtos

import "github.com/justsurfingit/jobboard-api/internal/models"

type CompanyResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// JobResponse is the wire shape of a posting: the storage id surfaces as
// "id" and row metadata (timestamps) is stripped.
type JobResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Salary      string          `json:"salary"`
	Company     CompanyResponse `json:"company"`
}

func NewJobResponse(job *models.JobPosting) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Type:        job.Type,
		Location:    job.Location,
		Description: job.Description,
		Salary:      job.Salary,
		Company: CompanyResponse{
			Name:         job.Company.Name,
			Description:  job.Company.Description,
			ContactEmail: job.Company.ContactEmail,
			ContactPhone: job.Company.ContactPhone,
		},
	}
}

func NewJobListResponse(jobs []models.JobPosting) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}
