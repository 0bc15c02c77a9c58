package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/civicteams/server/internal/domain/assignment"
	"github.com/civicteams/server/internal/domain/team"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// withMembers returns a copy of t with its members loaded, oldest first.
func (st *state) withMembers(t model.Team) *model.Team {
	t.Members = nil
	for _, m := range st.members {
		if m.TeamID == t.ID {
			t.Members = append(t.Members, m)
		}
	}
	slices.SortFunc(t.Members, func(x, y model.TeamMember) int {
		if c := x.JoinedAt.Compare(y.JoinedAt); c != 0 {
			return c
		}
		return strings.Compare(x.UserID.String(), y.UserID.String())
	})
	if t.IssueID != nil {
		id := *t.IssueID
		t.IssueID = &id
	}
	return &t
}

// ========== Team Adapter ==========

// TeamAdapter implements outbound.TeamDatabasePort.
type TeamAdapter struct {
	s *Store
}

// NewTeamAdapter creates a new team adapter backed by the store.
func NewTeamAdapter(s *Store) *TeamAdapter {
	return &TeamAdapter{s: s}
}

func (a *TeamAdapter) Create(ctx context.Context, t *model.Team) error {
	return a.s.do(ctx, func(st *state) error {
		for _, existing := range st.teams {
			if existing.Name == t.Name {
				return team.ErrTeamNameTaken
			}
			if existing.LeaderID == t.LeaderID {
				return team.ErrAlreadyLeader
			}
		}
		stored := *t
		stored.Members = nil
		st.teams[t.ID] = stored
		return nil
	})
}

func (a *TeamAdapter) FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	return a.find(ctx, func(t model.Team) bool { return t.ID == id })
}

// FindByIDForUpdate is FindByID: transactions are already serialized.
func (a *TeamAdapter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	return a.FindByID(ctx, id)
}

func (a *TeamAdapter) FindByName(ctx context.Context, name string) (*model.Team, error) {
	return a.find(ctx, func(t model.Team) bool { return t.Name == name })
}

func (a *TeamAdapter) FindByLeader(ctx context.Context, leaderID uuid.UUID) (*model.Team, error) {
	return a.find(ctx, func(t model.Team) bool { return t.LeaderID == leaderID })
}

func (a *TeamAdapter) FindByIssue(ctx context.Context, issueID uuid.UUID) (*model.Team, error) {
	return a.find(ctx, func(t model.Team) bool { return t.IssueID != nil && *t.IssueID == issueID })
}

func (a *TeamAdapter) List(ctx context.Context) ([]*model.Team, error) {
	var teams []*model.Team
	_ = a.s.do(ctx, func(st *state) error {
		teams = make([]*model.Team, 0, len(st.teams))
		for _, t := range st.teams {
			teams = append(teams, st.withMembers(t))
		}
		return nil
	})

	slices.SortFunc(teams, func(x, y *model.Team) int {
		if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(x.ID.String(), y.ID.String())
	})
	return teams, nil
}

func (a *TeamAdapter) SetIssue(ctx context.Context, teamID uuid.UUID, issueID *uuid.UUID) error {
	return a.s.do(ctx, func(st *state) error {
		t, ok := st.teams[teamID]
		if !ok {
			return team.ErrTeamNotFound
		}
		if issueID != nil {
			for _, other := range st.teams {
				if other.ID != teamID && other.IssueID != nil && *other.IssueID == *issueID {
					return assignment.ErrIssueClaimed
				}
			}
			id := *issueID
			t.IssueID = &id
		} else {
			t.IssueID = nil
		}
		t.UpdatedAt = time.Now()
		st.teams[teamID] = t
		return nil
	})
}

func (a *TeamAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	return a.s.do(ctx, func(st *state) error {
		if _, ok := st.teams[id]; !ok {
			return team.ErrTeamNotFound
		}
		for userID, m := range st.members {
			if m.TeamID == id {
				delete(st.members, userID)
			}
		}
		delete(st.teams, id)
		return nil
	})
}

func (a *TeamAdapter) find(ctx context.Context, match func(model.Team) bool) (*model.Team, error) {
	var found *model.Team
	err := a.s.do(ctx, func(st *state) error {
		for _, t := range st.teams {
			if match(t) {
				found = st.withMembers(t)
				return nil
			}
		}
		return team.ErrTeamNotFound
	})
	return found, err
}

// ========== Member Adapter ==========

// TeamMemberAdapter implements outbound.TeamMemberDatabasePort.
type TeamMemberAdapter struct {
	s *Store
}

// NewTeamMemberAdapter creates a new team member adapter backed by the store.
func NewTeamMemberAdapter(s *Store) *TeamMemberAdapter {
	return &TeamMemberAdapter{s: s}
}

func (a *TeamMemberAdapter) Add(ctx context.Context, member *model.TeamMember) error {
	return a.s.do(ctx, func(st *state) error {
		if _, ok := st.teams[member.TeamID]; !ok {
			return team.ErrTeamNotFound
		}
		if _, ok := st.members[member.UserID]; ok {
			return team.ErrMemberOfAnotherTeam
		}
		st.members[member.UserID] = *member
		return nil
	})
}

func (a *TeamMemberAdapter) FindByUser(ctx context.Context, userID uuid.UUID) (*model.TeamMember, error) {
	var found *model.TeamMember
	err := a.s.do(ctx, func(st *state) error {
		m, ok := st.members[userID]
		if !ok {
			return team.ErrMemberNotFound
		}
		found = &m
		return nil
	})
	return found, err
}

func (a *TeamMemberAdapter) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	_ = a.s.do(ctx, func(st *state) error {
		t, ok := st.teams[teamID]
		if !ok {
			return nil
		}
		for _, m := range st.withMembers(t).Members {
			members = append(members, &m)
		}
		return nil
	})
	return members, nil
}

func (a *TeamMemberAdapter) Remove(ctx context.Context, teamID, userID uuid.UUID) error {
	return a.s.do(ctx, func(st *state) error {
		m, ok := st.members[userID]
		if !ok || m.TeamID != teamID {
			return team.ErrMemberNotFound
		}
		delete(st.members, userID)
		return nil
	})
}

var (
	_ outbound.TeamDatabasePort       = (*TeamAdapter)(nil)
	_ outbound.TeamMemberDatabasePort = (*TeamMemberAdapter)(nil)
)
