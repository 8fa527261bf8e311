package employee

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viotsoft/Altiq-hr-AI/config"
	employeeerrors "github.com/viotsoft/Altiq-hr-AI/employee/errors"
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, empID string) (EmployeeResponse, error)
	GetManager(ctx context.Context, empID string) (ManagerResponse, error)
	SearchByName(ctx context.Context, query string, limit int, cutoff float64) ([]string, error)
	GetDirectReports(ctx context.Context, managerID string) ([]string, error)
	NextID(ctx context.Context) (string, error)
}

type service struct {
	repo   Repository
	cfg    config.Config
	logger *zap.Logger
}

func NewService(repo Repository, cfg config.Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, cfg: cfg, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested",
		zap.String("emp_id", req.EmpID),
		zap.String("name", req.Name),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if req.EmpID == "" {
		next, err := s.repo.NextID(ctx)
		if err != nil {
			s.logger.Error("create employee generate id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmpID = next
	}

	managerID := normalizeRef(req.ManagerID)
	if managerID != nil {
		exists, err := s.repo.Exists(ctx, *managerID)
		if err != nil {
			s.logger.Error("create employee manager check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			s.logger.Warn("create employee manager not found",
				zap.String("emp_id", req.EmpID),
				zap.String("manager_id", *managerID),
			)
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
	}

	now := time.Now().UTC()
	e := &Employee{
		EmpID:     req.EmpID,
		Name:      req.Name,
		ManagerID: managerID,
		Email:     req.Email,
		HiredDate: now,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("emp_id", e.EmpID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success", zap.String("emp_id", e.EmpID))
	return mapToResponse(*e), nil
}

func (s *service) GetByID(ctx context.Context, empID string) (EmployeeResponse, error) {
	s.logger.Debug("get employee requested", zap.String("emp_id", empID))

	e, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetManager(ctx context.Context, empID string) (ManagerResponse, error) {
	s.logger.Debug("get manager requested", zap.String("emp_id", empID))

	e, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		return ManagerResponse{}, mapRepositoryError(err)
	}
	if e.ManagerID == nil {
		return ManagerResponse{
			EmpID:   empID,
			Message: "No manager assigned.",
		}, nil
	}

	mgr, err := s.repo.FindByID(ctx, *e.ManagerID)
	if err != nil {
		// The manager edge is only recorded against existing employees and
		// nothing deletes, so a dangling reference is a store fault.
		s.logger.Error("get manager dangling reference",
			zap.String("emp_id", empID),
			zap.String("manager_id", *e.ManagerID),
			zap.Error(err),
		)
		return ManagerResponse{}, mapRepositoryError(err)
	}

	return ManagerResponse{
		EmpID:       empID,
		Assigned:    true,
		ManagerID:   mgr.EmpID,
		ManagerName: mgr.Name,
		Message:     fmt.Sprintf("%s: %s", mgr.EmpID, mgr.Name),
	}, nil
}

func (s *service) SearchByName(ctx context.Context, query string, limit int, cutoff float64) ([]string, error) {
	if limit <= 0 {
		limit = s.cfg.SearchLimit
	}
	if cutoff <= 0 {
		cutoff = s.cfg.SearchCutoff
	}
	s.logger.Debug("search by name requested",
		zap.String("query", query),
		zap.Int("limit", limit),
		zap.Float64("cutoff", cutoff),
	)

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("search by name list failed", zap.Error(err))
		return nil, err
	}

	type ranked struct {
		empID string
		sim   float64
	}
	var matches []ranked
	for _, e := range all {
		sim := similarity(query, e.Name)
		if sim >= cutoff {
			matches = append(matches, ranked{empID: e.EmpID, sim: sim})
		}
	}
	// Best first; ties keep directory order.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].sim > matches[j].sim })
	if len(matches) > limit {
		matches = matches[:limit]
	}

	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.empID
	}
	return ids, nil
}

func (s *service) GetDirectReports(ctx context.Context, managerID string) ([]string, error) {
	s.logger.Debug("direct reports requested", zap.String("manager_id", managerID))

	exists, err := s.repo.Exists(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	reports, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(reports))
	for i, e := range reports {
		ids[i] = e.EmpID
	}
	return ids, nil
}

func (s *service) NextID(ctx context.Context) (string, error) {
	return s.repo.NextID(ctx)
}

// similarity is a case-folded Levenshtein ratio in [0, 1].
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

func normalizeRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID:     e.EmpID,
		Name:      e.Name,
		ManagerID: e.ManagerID,
		Email:     e.Email,
		HiredDate: e.HiredDate.Format("2006-01-02"),
	}
}
