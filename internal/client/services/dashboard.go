package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/client/models"
	"golang.org/x/sync/errgroup"
)

const (
	StatusAll      = "all"
	dashboardLimit = 100
)

// MemberStatuses are the values accepted by SetMemberStatus.
var MemberStatuses = []string{"active", "pending", "inactive"}

var ErrInvalidStatus = errors.New("invalid member status")

// DashboardAPI is the part of the API client used by the admin dashboard.
type DashboardAPI interface {
	GetMembers(ctx context.Context, q api.PageQuery) (models.Page[models.Member], error)
	GetContactMessages(ctx context.Context, q api.PageQuery) (models.Page[models.ContactMessage], error)
	GetAdminStats(ctx context.Context) (models.AdminStats, error)
	GetCommunityStrength(ctx context.Context) (int, error)
	UpdateMemberStatus(ctx context.Context, id models.ID, status string) error
	DeleteMember(ctx context.Context, id models.ID) error
	DeleteContactMessage(ctx context.Context, id models.ID) error
	Logout(ctx context.Context) error
}

// Snapshot is everything the dashboard renders.
type Snapshot struct {
	Members           []models.Member
	Messages          []models.ContactMessage
	Stats             models.AdminStats
	CommunityStrength int
	LoadedAt          time.Time
}

type DashboardService struct {
	api DashboardAPI
	now func() time.Time
}

func NewDashboardService(api DashboardAPI) *DashboardService {
	return &DashboardService{api: api, now: time.Now}
}

// Open forgets any stored credential so every dashboard visit starts at the
// login prompt.
func (s *DashboardService) Open(ctx context.Context) error {
	return s.api.Logout(ctx)
}

// Load issues the four dashboard requests concurrently. If any fails the
// whole load fails and nothing is returned.
func (s *DashboardService) Load(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	q := api.PageQuery{Limit: dashboardLimit}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.api.GetMembers(gctx, q)
		snap.Members = p.Data
		return err
	})
	g.Go(func() error {
		p, err := s.api.GetContactMessages(gctx, q)
		snap.Messages = p.Data
		return err
	})
	g.Go(func() (err error) {
		snap.Stats, err = s.api.GetAdminStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.CommunityStrength, err = s.api.GetCommunityStrength(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	snap.LoadedAt = s.now()
	return &snap, nil
}

func (s *DashboardService) SetMemberStatus(ctx context.Context, id models.ID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if !slices.Contains(MemberStatuses, status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.api.UpdateMemberStatus(ctx, id, status)
}

func (s *DashboardService) DeleteMember(ctx context.Context, id models.ID) error {
	return s.api.DeleteMember(ctx, id)
}

func (s *DashboardService) DeleteMessage(ctx context.Context, id models.ID) error {
	return s.api.DeleteContactMessage(ctx, id)
}

// FilterMembers keeps members whose name or email contains search
// (case-insensitive) and whose status equals status; StatusAll or "" keeps
// every status.
func FilterMembers(members []models.Member, search, status string) []models.Member {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.ToLower(strings.TrimSpace(status))

	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.FullName), search) &&
			!strings.Contains(strings.ToLower(m.Email), search) {
			continue
		}
		if status != "" && status != StatusAll && strings.ToLower(m.Status) != status {
			continue
		}
		out = append(out, m)
	}
	return out
}

var csvHeader = []string{
	"id", "full_name", "father_name", "cnic", "gender", "phone", "email",
	"qualification", "profession", "city", "district", "province", "caste",
	"marital_status", "membership_type", "family_members_count", "status", "created_at",
}

// ExportCSV writes members as CSV with a header row.
func ExportCSV(w io.Writer, members []models.Member) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range members {
		row := []string{
			m.ID.String(), m.FullName, m.FatherName, m.CNIC, m.Gender, m.Phone, m.Email,
			m.Qualification, m.Profession, m.City, m.District, m.Province, m.Caste,
			m.MaritalStatus, m.MembershipType, strconv.Itoa(m.FamilyMembersCount), m.Status, m.CreatedAt,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
