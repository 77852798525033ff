package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityguide/internal/domain"
)

// In-memory repository fakes. Setting err makes every method fail with
// it, simulating unreachable storage; saveErr only fails writes, which
// is how constraint violations are injected.

func requireDomainError(t *testing.T, err error, kind domain.Kind, message string) {
	t.Helper()
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, kind, de.Kind)
	assert.Equal(t, domain.NewError(kind, message).Error(), de.Error())
}

type recordingPublisher struct {
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fakeCityRepo struct {
	cities  map[int64]*domain.City
	nextID  int64
	err     error
	saveErr error
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: map[int64]*domain.City{}}
}

func (f *fakeCityRepo) add(city domain.City) *domain.City {
	if city.ID == 0 {
		f.nextID++
		city.ID = f.nextID
	} else if city.ID > f.nextID {
		f.nextID = city.ID
	}
	f.cities[city.ID] = &city
	return &city
}

func (f *fakeCityRepo) List(context.Context) ([]domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.City{}
	for _, c := range f.cities {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCityRepo) GetByID(_ context.Context, id int64) (*domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.cities[id]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCityRepo) GetByName(_ context.Context, name string) (*domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cities {
		if c.Name == name {
			copy := *c
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCityRepo) GetByLocation(_ context.Context, latitude, longitude string) (*domain.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cities {
		if c.Latitude == latitude && c.Longitude == longitude {
			copy := *c
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCityRepo) Save(_ context.Context, city *domain.City) error {
	if f.err != nil {
		return f.err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := f.add(*city)
	city.ID = saved.ID
	return nil
}

func (f *fakeCityRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.cities, id)
	return nil
}

type fakePoiRepo struct {
	pois    map[int64]*domain.Poi
	nextID  int64
	err     error
	saveErr error
}

func newFakePoiRepo() *fakePoiRepo {
	return &fakePoiRepo{pois: map[int64]*domain.Poi{}}
}

func (f *fakePoiRepo) add(poi domain.Poi) *domain.Poi {
	if poi.ID == 0 {
		f.nextID++
		poi.ID = f.nextID
	} else if poi.ID > f.nextID {
		f.nextID = poi.ID
	}
	f.pois[poi.ID] = &poi
	return &poi
}

func (f *fakePoiRepo) List(context.Context) ([]domain.Poi, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Poi{}
	for _, p := range f.pois {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePoiRepo) ListByCity(_ context.Context, cityID int64) ([]domain.Poi, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Poi{}
	for _, p := range f.pois {
		if p.City != nil && p.City.ID == cityID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePoiRepo) GetByID(_ context.Context, id int64) (*domain.Poi, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.pois[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePoiRepo) GetByName(_ context.Context, name string) (*domain.Poi, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.pois {
		if p.Name == name {
			copy := *p
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePoiRepo) GetByLocation(_ context.Context, latitude, longitude string) (*domain.Poi, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.pois {
		if p.Latitude == latitude && p.Longitude == longitude {
			copy := *p
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePoiRepo) Save(_ context.Context, poi *domain.Poi) error {
	if f.err != nil {
		return f.err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := f.add(*poi)
	poi.ID = saved.ID
	return nil
}

func (f *fakePoiRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.pois, id)
	return nil
}

type fakeTypeRepo struct {
	types   map[int64]*domain.Type
	nextID  int64
	err     error
	saveErr error
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: map[int64]*domain.Type{}}
}

func (f *fakeTypeRepo) add(typ domain.Type) *domain.Type {
	if typ.ID == 0 {
		f.nextID++
		typ.ID = f.nextID
	} else if typ.ID > f.nextID {
		f.nextID = typ.ID
	}
	f.types[typ.ID] = &typ
	return &typ
}

func (f *fakeTypeRepo) List(context.Context) ([]domain.Type, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Type{}
	for _, v := range f.types {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id int64) (*domain.Type, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.types[id]; ok {
		copy := *v
		return &copy, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTypeRepo) GetByName(_ context.Context, name string) (*domain.Type, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.types {
		if v.Name == name {
			copy := *v
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTypeRepo) Save(_ context.Context, typ *domain.Type) error {
	if f.err != nil {
		return f.err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := f.add(*typ)
	typ.ID = saved.ID
	return nil
}

func (f *fakeTypeRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.types, id)
	return nil
}

type fakeTagRepo struct {
	tags    map[int64]*domain.Tag
	byPoi   map[int64][]int64
	nextID  int64
	err     error
	saveErr error
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[int64]*domain.Tag{}, byPoi: map[int64][]int64{}}
}

func (f *fakeTagRepo) add(tag domain.Tag) *domain.Tag {
	if tag.ID == 0 {
		f.nextID++
		tag.ID = f.nextID
	} else if tag.ID > f.nextID {
		f.nextID = tag.ID
	}
	f.tags[tag.ID] = &tag
	return &tag
}

func (f *fakeTagRepo) List(context.Context) ([]domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Tag{}
	for _, v := range f.tags {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeTagRepo) ListByPoi(_ context.Context, poiID int64) ([]domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Tag{}
	for _, id := range f.byPoi[poiID] {
		if v, ok := f.tags[id]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeTagRepo) GetByID(_ context.Context, id int64) (*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.tags[id]; ok {
		copy := *v
		return &copy, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTagRepo) GetByName(_ context.Context, name string) (*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.tags {
		if v.Name == name {
			copy := *v
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTagRepo) Save(_ context.Context, tag *domain.Tag) error {
	if f.err != nil {
		return f.err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := f.add(*tag)
	tag.ID = saved.ID
	return nil
}

func (f *fakeTagRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.tags, id)
	return nil
}

type fakeRoleRepo struct {
	roles   map[int64]*domain.Role
	nextID  int64
	err     error
	saveErr error
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int64]*domain.Role{}}
}

func (f *fakeRoleRepo) add(role domain.Role) *domain.Role {
	if role.ID == 0 {
		f.nextID++
		role.ID = f.nextID
	} else if role.ID > f.nextID {
		f.nextID = role.ID
	}
	f.roles[role.ID] = &role
	return &role
}

func (f *fakeRoleRepo) List(context.Context) ([]domain.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Role{}
	for _, v := range f.roles {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.roles[id]; ok {
		copy := *v
		return &copy, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.roles {
		if v.Name == name {
			copy := *v
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoleRepo) Save(_ context.Context, role *domain.Role) error {
	if f.err != nil {
		return f.err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := f.add(*role)
	role.ID = saved.ID
	return nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.roles, id)
	return nil
}

type fakeUserRepo struct {
	users    map[int64]*domain.User
	roles    *fakeRoleRepo
	nextID   int64
	err      error
	saveErr  error
	rolesErr error
}

func newFakeUserRepo(roles *fakeRoleRepo) *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, roles: roles}
}

func (f *fakeUserRepo) add(user domain.User) *domain.User {
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	} else if user.ID > f.nextID {
		f.nextID = user.ID
	}
	f.users[user.ID] = &user
	return &user
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByName(_ context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Save(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := f.add(*user)
	user.ID = saved.ID
	return nil
}

func (f *fakeUserRepo) ReplaceRoles(_ context.Context, userID int64, roleIDs []int64) error {
	if f.err != nil {
		return f.err
	}
	if f.rolesErr != nil {
		return f.rolesErr
	}
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.Roles = nil
	for _, id := range roleIDs {
		if role, ok := f.roles.roles[id]; ok {
			u.Roles = append(u.Roles, *role)
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	return nil
}
