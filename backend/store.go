package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/nipia/imobiliaria-dashboard/models"
)

// Backend resource paths, per the REST surface this dashboard consumes.
const (
	PathLogin         = "/login"
	PathUsers         = "/api/usuarios"
	PathNeighborhoods = "/api/bairros"
	PathPropertyTypes = "/api/tipos-imoveis"
	PathProperties    = "/api/imoveis"
	PathPhotos        = "/api/fotos-imoveis"
)

// Store is the typed face of the backend: one method per operation the pages
// need, with list reads going through the optional Redis cache and mutations
// invalidating it.
type Store struct {
	client *Client
	cache  *Cache
}

func NewStore(client *Client, cache *Cache) *Store {
	return &Store{client: client, cache: cache}
}

func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds := map[string]string{"email": email, "senha": password}
	var user models.User
	if err := s.client.Post(ctx, PathLogin, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.list(ctx, PathUsers, &users)
	return users, err
}

func (s *Store) CreateUser(ctx context.Context, u models.User) error {
	return s.create(ctx, PathUsers, u)
}

func (s *Store) UpdateUser(ctx context.Context, id string, u models.User) error {
	return s.update(ctx, PathUsers, id, u)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.delete(ctx, PathUsers, id)
}

func (s *Store) ListNeighborhoods(ctx context.Context) ([]models.Neighborhood, error) {
	var items []models.Neighborhood
	err := s.list(ctx, PathNeighborhoods, &items)
	return items, err
}

func (s *Store) CreateNeighborhood(ctx context.Context, n models.Neighborhood) error {
	return s.create(ctx, PathNeighborhoods, n)
}

func (s *Store) UpdateNeighborhood(ctx context.Context, id string, n models.Neighborhood) error {
	return s.update(ctx, PathNeighborhoods, id, n)
}

func (s *Store) DeleteNeighborhood(ctx context.Context, id string) error {
	return s.delete(ctx, PathNeighborhoods, id)
}

func (s *Store) ListPropertyTypes(ctx context.Context) ([]models.PropertyType, error) {
	var items []models.PropertyType
	err := s.list(ctx, PathPropertyTypes, &items)
	return items, err
}

func (s *Store) CreatePropertyType(ctx context.Context, t models.PropertyType) error {
	return s.create(ctx, PathPropertyTypes, t)
}

func (s *Store) UpdatePropertyType(ctx context.Context, id string, t models.PropertyType) error {
	return s.update(ctx, PathPropertyTypes, id, t)
}

func (s *Store) DeletePropertyType(ctx context.Context, id string) error {
	return s.delete(ctx, PathPropertyTypes, id)
}

func (s *Store) ListProperties(ctx context.Context) ([]models.Property, error) {
	var items []models.Property
	err := s.list(ctx, PathProperties, &items)
	return items, err
}

func (s *Store) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := s.client.Get(ctx, PathProperties+"/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProperty(ctx context.Context, p models.Property) error {
	return s.create(ctx, PathProperties, p)
}

func (s *Store) UpdateProperty(ctx context.Context, id string, p models.Property) error {
	return s.update(ctx, PathProperties, id, p)
}

func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	return s.delete(ctx, PathProperties, id)
}

// ListPhotos fetches the whole photo collection; the backend has no
// per-property query, so callers join in memory via the catalog package.
func (s *Store) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	var items []models.Photo
	err := s.list(ctx, PathPhotos, &items)
	return items, err
}

// UploadPhoto streams a new image to the backend's multipart endpoint.
func (s *Store) UploadPhoto(ctx context.Context, file io.Reader, filename string, propertyID string, cover bool, order int) error {
	fields := map[string]string{
		"imovelId": propertyID,
		"capa":     fmt.Sprintf("%t", cover),
		"ordem":    fmt.Sprintf("%d", order),
	}
	if err := s.client.Upload(ctx, PathPhotos+"/upload", file, filename, fields, nil); err != nil {
		return err
	}
	s.cache.Invalidate(PathPhotos)
	return nil
}

func (s *Store) UpdatePhoto(ctx context.Context, id string, p models.Photo) error {
	return s.update(ctx, PathPhotos, id, p)
}

func (s *Store) DeletePhoto(ctx context.Context, id string) error {
	return s.delete(ctx, PathPhotos, id)
}

func (s *Store) list(ctx context.Context, path string, out any) error {
	if body, ok := s.cache.Get(ctx, path); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		log.Printf("Discarding unreadable cache entry for %s", path)
	}

	body, err := s.client.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	s.cache.Set(ctx, path, body)
	return decode(body, out)
}

func (s *Store) create(ctx context.Context, path string, in any) error {
	if err := s.client.Post(ctx, path, in, nil); err != nil {
		return err
	}
	// invalidate before returning: the caller re-fetches right after the
	// redirect and must not read the stale body
	s.cache.Invalidate(path)
	return nil
}

func (s *Store) update(ctx context.Context, path, id string, in any) error {
	if err := s.client.Put(ctx, path+"/"+id, in, nil); err != nil {
		return err
	}
	s.cache.Invalidate(path)
	return nil
}

func (s *Store) delete(ctx context.Context, path, id string) error {
	if err := s.client.Delete(ctx, path+"/"+id); err != nil {
		return err
	}
	s.cache.Invalidate(path)
	return nil
}
