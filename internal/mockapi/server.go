// internal/mockapi/server.go
package mockapi

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Collection names served by the mock. The hosted service splits them
// over two projects; locally one server carries all four.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionCart     = "cart"
	CollectionOrder    = "order"
)

// Server is a local stand-in for the hosted mock REST API: schemaless
// JSON documents in named collections, keyed by an opaque string id.
// It exists for development and as an integration-test target; it is
// not a product backend.
type Server struct {
	engine *gin.Engine

	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	items map[string]map[string]interface{}
	order []string
}

// NewServer creates a mock API server with empty collections
func NewServer() *Server {
	s := &Server{
		collections: map[string]*collection{
			CollectionUsers:    newCollection(),
			CollectionProducts: newCollection(),
			CollectionCart:     newCollection(),
			CollectionOrder:    newCollection(),
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	for name := range s.collections {
		group := engine.Group("/" + name)
		group.GET("", s.list(name))
		group.GET("/:id", s.get(name))
		group.POST("", s.create(name))
		group.PUT("/:id", s.replace(name))
		group.DELETE("/:id", s.remove(name))
	}

	s.engine = engine
	return s
}

func newCollection() *collection {
	return &collection{
		items: make(map[string]map[string]interface{}),
	}
}

// Handler exposes the server as an http.Handler for httptest and cmd
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Insert stores a document directly, bypassing HTTP. Used for seeding.
func (s *Server) Insert(collectionName string, doc map[string]interface{}) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collections[collectionName]
	id := uuid.NewString()
	stored := cloneDoc(doc)
	stored["id"] = id
	col.items[id] = stored
	col.order = append(col.order, id)
	return id
}

// Count returns the number of documents in a collection
func (s *Server) Count(collectionName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collectionName].items)
}

// list handles GET /{collection}. Query parameters filter by exact
// field match, which is all the storefront's lookups rely on.
func (s *Server) list(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		col := s.collections[name]
		results := make([]map[string]interface{}, 0, len(col.order))

		for _, id := range col.order {
			item, ok := col.items[id]
			if !ok {
				continue
			}
			if matchesQuery(item, c.Request.URL.Query()) {
				results = append(results, item)
			}
		}

		c.JSON(http.StatusOK, results)
	}
}

// get handles GET /{collection}/{id}
func (s *Server) get(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		item, ok := s.collections[name].items[c.Param("id")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// create handles POST /{collection} and assigns the record id
func (s *Server) create(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc map[string]interface{}
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		col := s.collections[name]
		id := uuid.NewString()
		doc["id"] = id
		col.items[id] = doc
		col.order = append(col.order, id)

		c.JSON(http.StatusCreated, doc)
	}
}

// replace handles PUT /{collection}/{id} with full-replace semantics
func (s *Server) replace(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc map[string]interface{}
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		id := c.Param("id")
		col := s.collections[name]
		if _, ok := col.items[id]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		doc["id"] = id
		col.items[id] = doc

		c.JSON(http.StatusOK, doc)
	}
}

// remove handles DELETE /{collection}/{id}
func (s *Server) remove(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		id := c.Param("id")
		col := s.collections[name]
		item, ok := col.items[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		delete(col.items, id)

		c.JSON(http.StatusOK, item)
	}
}

func matchesQuery(item map[string]interface{}, query map[string][]string) bool {
	for field, values := range query {
		if len(values) == 0 {
			continue
		}
		v, ok := item[field]
		if !ok || fmt.Sprintf("%v", v) != values[0] {
			return false
		}
	}
	return true
}

func cloneDoc(doc map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		clone[k] = v
	}
	return clone
}
