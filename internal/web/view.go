package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Views renders the screen templates. One parsed set is shared by all
// handlers; templates are addressed by their define name.
type Views struct {
	tmpl *template.Template
}

// NewViews parses the embedded templates. The parse happens once at startup
// so a broken template fails the process, not a request.
func NewViews() (*Views, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Views{tmpl: tmpl}, nil
}

// Render writes the named screen. A template failure after the header is out
// is unrecoverable, so it only gets logged by the caller's middleware.
func (v *Views) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return v.tmpl.ExecuteTemplate(w, name, data)
}

// StaticHandler serves the embedded stylesheet and assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// View models. These carry preformatted strings; formatting decisions stay in
// the handlers, templates only place values.

type formView struct {
	Title       string
	Action      string
	Field       string
	Placeholder string
	InputType   string
	Value       string
	Back        string
	Error       string
}

type inviteView struct {
	Code  string
	Error string
}

type loginView struct {
	UserID string
	Error  string
}

type passwordView struct {
	Error string
}

type partyCard struct {
	ID       int64
	Title    string
	Host     string
	Enrolled bool
}

type partiesView struct {
	Parties []partyCard
}

type partyDetailView struct {
	ID          int64
	Title       string
	Host        string
	Date        string
	Time        string
	Location    string
	Description string
	SpotsLeft   int
	TotalSpots  int
	Enrolled    bool
}

type paymentView struct {
	PartyID       int64
	BankName      string
	AccountNumber string
	AccountHolder string
	Amount        string
	Error         string
}

type couponView struct {
	HasNoCoupon bool
	PartyTitle  string
	Used        bool
	JustUsed    bool
	Error       string
}

type profileUserView struct {
	Name     string
	UserID   string
	Birthday string
	Phone    string
}

type profileEnrollmentView struct {
	Title       string
	EnrolledAt  string
	StatusLabel string
}

type couponSummaryView struct {
	Total     int
	Used      int
	Available int
}

type profileView struct {
	User          *profileUserView
	Enrollments   []profileEnrollmentView
	CouponSummary couponSummaryView
	ShowAdmin     bool
}

type pendingRow struct {
	ID        int64
	Name      string
	UserID    string
	Phone     string
	CreatedAt string
}

type adminView struct {
	Enrollments []pendingRow
	Total       int
	Flash       string
	Error       string
}
