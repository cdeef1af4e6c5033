package popup

import (
	"github.com/google/uuid"

	"pecheck/internal/models"
)

// State is the popup's position in its per-open state machine.
// Loading is the only non-terminal state.
type State string

const (
	StateLoading      State = "loading"
	StateResults      State = "results"
	StateError        State = "error"
	StateUnanalyzable State = "unanalyzable"
)

// Texts shown by the popup.
const (
	LoadingMessage      = "Checking ownership..."
	ErrorMessage        = "Error analyzing site"
	UnanalyzableDetails = "Unable to analyze this page."

	BannerPEOwned  = "Private Equity Owned"
	BannerNotFound = "Not in PE Database"

	ClassPEOwned  = "pe-owned"
	ClassNotFound = "not-pe-owned"

	PEOwnedNote     = "This company is owned by private equity."
	NotFoundDetails = "No private equity ownership found in our database. This doesn't guarantee the company isn't PE-owned, just that it's not in our current records."
)

// View is everything the popup renders for one open.
type View struct {
	SessionID   uuid.UUID `json:"session_id"`
	State       State     `json:"state"`
	Message     string    `json:"message,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	Domain      string    `json:"domain,omitempty"`
	PEOwned     bool      `json:"pe_owned"`
	Banner      string    `json:"banner,omitempty"`
	BannerClass string    `json:"banner_class,omitempty"`
	Owner       string    `json:"owner,omitempty"`
	Year        string    `json:"year,omitempty"`
	Source      string    `json:"source,omitempty"`
	Details     string    `json:"details,omitempty"`
}

func newView() View {
	return View{SessionID: uuid.New(), State: StateLoading, Message: LoadingMessage}
}

// Terminal reports whether the view has left Loading.
func (v View) Terminal() bool {
	return v.State != StateLoading
}

func (v View) unanalyzable() View {
	v.State = StateUnanalyzable
	v.Message = ""
	v.Details = UnanalyzableDetails
	return v
}

func (v View) failed() View {
	v.State = StateError
	v.Message = ErrorMessage
	return v
}

func (v View) results(domain, companyName string, rec *models.PEOwnershipRecord) View {
	v.State = StateResults
	v.Message = ""
	v.Domain = domain
	v.CompanyName = companyName
	if v.CompanyName == "" {
		v.CompanyName = "Unknown"
	}

	if rec == nil {
		v.Banner = BannerNotFound
		v.BannerClass = ClassNotFound
		v.Details = NotFoundDetails
		return v
	}

	v.PEOwned = true
	v.Banner = BannerPEOwned
	v.BannerClass = ClassPEOwned
	v.Owner = rec.Owner
	v.Year = rec.Year
	v.Source = rec.Source
	v.Details = PEOwnedNote
	return v
}
