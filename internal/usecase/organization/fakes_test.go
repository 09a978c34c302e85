package organization

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/BruksfildServices01/gente-api/internal/audit"
	"github.com/BruksfildServices01/gente-api/internal/domain/focalpoint"
	domain "github.com/BruksfildServices01/gente-api/internal/domain/organization"
	"github.com/BruksfildServices01/gente-api/internal/models"
)

// fakeRepo guarda tudo em memória e imita as regras de versão do repositório gorm.
type fakeRepo struct {
	nextID    uint
	groups    map[uint]models.Group
	companies map[uint]models.Company
	regions   map[uint]models.Region
	fps       map[focalpoint.Kind]map[uint][]models.FocalPointRow
	writes    []domain.FocalPointWrite

	// beforeListFocalPoints roda uma vez antes da próxima leitura das linhas,
	// para simular uma gravação concorrente no meio de um Get.
	beforeListFocalPoints func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		groups:    map[uint]models.Group{},
		companies: map[uint]models.Company{},
		regions:   map[uint]models.Region{},
		fps: map[focalpoint.Kind]map[uint][]models.FocalPointRow{
			focalpoint.KindGroup:   {},
			focalpoint.KindCompany: {},
		},
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) replace(kind focalpoint.Kind, parentID uint, w domain.FocalPointWrite) {
	f.writes = append(f.writes, w)
	if !w.Replace {
		return
	}
	rows := make([]models.FocalPointRow, len(w.Rows))
	for i, r := range w.Rows {
		r.ID = f.id()
		r.ParentID = parentID
		rows[i] = r
	}
	f.fps[kind][parentID] = rows
}

func (f *fakeRepo) ListRegions(context.Context) ([]models.Region, error) {
	out := []models.Region{}
	for _, r := range f.regions {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) GetRegion(_ context.Context, id uint) (*models.Region, error) {
	r, ok := f.regions[id]
	if !ok {
		return nil, domain.ErrRegionNotFound
	}
	return &r, nil
}

func (f *fakeRepo) SaveRegion(_ context.Context, r *models.Region) error {
	if r.ID == 0 {
		r.ID = f.id()
	}
	f.regions[r.ID] = *r
	return nil
}

func (f *fakeRepo) DeleteRegion(_ context.Context, id uint) error {
	if _, ok := f.regions[id]; !ok {
		return domain.ErrRegionNotFound
	}
	delete(f.regions, id)
	return nil
}

func (f *fakeRepo) CreateGroup(_ context.Context, g *models.Group, w domain.FocalPointWrite) error {
	g.ID = f.id()
	g.Version = 1
	f.groups[g.ID] = *g
	f.replace(focalpoint.KindGroup, g.ID, w)
	return nil
}

func (f *fakeRepo) UpdateGroup(_ context.Context, g *models.Group, w domain.FocalPointWrite) error {
	cur, ok := f.groups[g.ID]
	if !ok {
		return domain.ErrGroupNotFound
	}
	if cur.Version != g.Version {
		return domain.ErrStaleVersion
	}
	g.Version++
	f.groups[g.ID] = *g
	f.replace(focalpoint.KindGroup, g.ID, w)
	return nil
}

func (f *fakeRepo) GetGroup(_ context.Context, id uint) (*models.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	return &g, nil
}

func (f *fakeRepo) GroupVersion(_ context.Context, id uint) (int, error) {
	g, ok := f.groups[id]
	if !ok {
		return 0, domain.ErrGroupNotFound
	}
	return g.Version, nil
}

func (f *fakeRepo) ListGroups(context.Context, domain.GroupFilter) ([]models.Group, error) {
	out := []models.Group{}
	for i := uint(1); i <= f.nextID; i++ {
		if g, ok := f.groups[i]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteGroup(_ context.Context, id uint) error {
	if _, ok := f.groups[id]; !ok {
		return domain.ErrGroupNotFound
	}
	delete(f.groups, id)
	delete(f.fps[focalpoint.KindGroup], id)
	return nil
}

func (f *fakeRepo) CreateCompany(_ context.Context, c *models.Company, w domain.FocalPointWrite) error {
	c.ID = f.id()
	c.Version = 1
	f.companies[c.ID] = *c
	f.replace(focalpoint.KindCompany, c.ID, w)
	return nil
}

func (f *fakeRepo) UpdateCompany(_ context.Context, c *models.Company, w domain.FocalPointWrite) error {
	cur, ok := f.companies[c.ID]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	if cur.Version != c.Version {
		return domain.ErrStaleVersion
	}
	c.Version++
	f.companies[c.ID] = *c
	f.replace(focalpoint.KindCompany, c.ID, w)
	return nil
}

func (f *fakeRepo) GetCompany(_ context.Context, id uint) (*models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return &c, nil
}

func (f *fakeRepo) CompanyVersion(_ context.Context, id uint) (int, error) {
	c, ok := f.companies[id]
	if !ok {
		return 0, domain.ErrCompanyNotFound
	}
	return c.Version, nil
}

func (f *fakeRepo) ListCompanies(context.Context, domain.CompanyFilter) ([]models.Company, error) {
	out := []models.Company{}
	for i := uint(1); i <= f.nextID; i++ {
		if c, ok := f.companies[i]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteCompany(_ context.Context, id uint) error {
	if _, ok := f.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(f.companies, id)
	delete(f.fps[focalpoint.KindCompany], id)
	return nil
}

func (f *fakeRepo) SetCompanyLogo(_ context.Context, id uint, url string, userID uint) error {
	c, ok := f.companies[id]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	c.LogoURL = url
	c.UpdatedBy = &userID
	c.Version++
	f.companies[id] = c
	return nil
}

func (f *fakeRepo) ListFocalPoints(_ context.Context, kind focalpoint.Kind, ids []uint) (map[uint][]models.FocalPointRow, error) {
	if hook := f.beforeListFocalPoints; hook != nil {
		f.beforeListFocalPoints = nil
		hook()
	}
	out := map[uint][]models.FocalPointRow{}
	for _, id := range ids {
		if rows, ok := f.fps[kind][id]; ok {
			out[id] = rows
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// memCache guarda JSON como o cache Redis faria.
type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func (m *memCache) Ping(context.Context) error { return nil }

type recordedAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordedAudit) Log(ev audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// newAudit devolve um dispatcher real e a função que espera a fila esvaziar.
func newAudit() (*audit.Dispatcher, func() []audit.Event) {
	rec := &recordedAudit{}
	d := audit.NewDispatcher(rec)
	return d, func() []audit.Event {
		d.Close()
		return rec.events
	}
}
