package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func DecodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func RespondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RespondOK(w http.ResponseWriter) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"msg": "ok"})
}

func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// reassignRequest is the uniform body of every reassignment endpoint:
// a peer id, or null to clear the assignment.
type reassignRequest struct {
	ID *uint `json:"id"`
}

// Ref is an embedded peer reference in list and history responses. Both
// fields are null when the pointer side of the relation is unset.
type Ref struct {
	ID   *uint   `json:"id"`
	Name *string `json:"name"`
}

func userRef(u *models.User) Ref {
	if u == nil {
		return Ref{}
	}
	return Ref{ID: &u.ID, Name: u.Name}
}

func departmentRef(d *models.Department) Ref {
	if d == nil {
		return Ref{}
	}
	return Ref{ID: &d.ID, Name: d.Name}
}

func groupRef(g *models.Group) Ref {
	if g == nil {
		return Ref{}
	}
	return Ref{ID: &g.ID, Name: g.Name}
}

func contractRef(c *models.Contract) Ref {
	if c == nil {
		return Ref{}
	}
	return Ref{ID: &c.ID, Name: c.Name}
}

func projectRef(p *models.Project) Ref {
	if p == nil {
		return Ref{}
	}
	return Ref{ID: &p.ID, Name: p.Name}
}

const dateLayout = "2006-01-02"

// Date is a calendar date in JSON, "YYYY-MM-DD".
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func dateValue(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
