// Package stubserver is a small in-memory backend for developing the client
// against. It deliberately answers in the mixed wire shapes seen across real
// deployments (legacy Mongo-era keys next to modern ones, envelopes on some
// endpoints and bare arrays on others) so the normalization layer gets
// exercised end to end.
package stubserver

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type user struct {
	ID       string
	Name     string
	Email    string
	Password string
	Avatar   string
}

type category struct {
	ID   string
	Name string
}

type recipe struct {
	ID          string
	Title       string
	Description string
	Image       string
	UserID      string
	CategoryID  string
	CreatedAt   time.Time
}

type like struct {
	ID       string
	RecipeID string
	UserID   string
	Type     string
}

type notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Server is the stub backend. All state is in memory and lost on exit.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger

	mu            sync.Mutex
	users         map[string]*user
	categories    map[string]*category
	recipes       map[string]*recipe
	likes         map[string]*like
	notifications map[string]*notification
}

var signingKey = []byte("platebook-stub")

// New creates a seeded stub server.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:        gin.New(),
		logger:        logger,
		users:         map[string]*user{},
		categories:    map[string]*category{},
		recipes:       map[string]*recipe{},
		likes:         map[string]*like{},
		notifications: map[string]*notification{},
	}
	s.seed()
	s.routes()
	return s
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.engine}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("stub server listening", zap.String("addr", addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(cors.Default())

	api := s.engine.Group("/api")
	{
		api.POST("/users/login", s.login)
		api.POST("/users/register", s.register)
		api.GET("/users/:id", s.getUser)
		api.POST("/users/:id/image", s.uploadAvatar)

		api.GET("/recipes", s.listRecipes)
		api.GET("/recipes/:id", s.getRecipe)
		api.POST("/recipes", s.createRecipe)
		api.POST("/recipes/:id/image", s.uploadRecipeImage)

		api.GET("/categories", s.listCategories)
		api.GET("/categories/:id", s.getCategory)
		api.POST("/categories", s.createCategory)

		api.GET("/likes", s.listLikes)
		api.POST("/likes", s.createLike)
		api.PUT("/likes/:id", s.updateLike)
		api.DELETE("/likes/:id", s.deleteLike)

		api.GET("/notifications", s.listNotifications)
		api.PUT("/notifications/:id", s.markNotificationRead)
	}
}

func (s *Server) seed() {
	demo := &user{ID: "u-demo", Name: "Demo Cook", Email: "demo@platebook.dev", Password: "password", Avatar: "/uploads/avatars/u-demo.jpg"}
	s.users[demo.ID] = demo

	cats := []*category{
		{ID: "cat-breakfast", Name: "Breakfast"},
		{ID: "cat-dinner", Name: "Dinner"},
		{ID: "cat-dessert", Name: "Desserts"},
	}
	for _, c := range cats {
		s.categories[c.ID] = c
	}

	seeds := []*recipe{
		{ID: "rec-1", Title: "Shakshuka", Description: "Eggs poached in spiced tomato sauce.", Image: "/uploads/recipes/rec-1.jpg", UserID: demo.ID, CategoryID: "cat-breakfast"},
		{ID: "rec-2", Title: "Beef Bourguignon", Description: "Slow braised beef in red wine.", Image: "/uploads/recipes/rec-2.jpg", UserID: demo.ID, CategoryID: "cat-dinner"},
		{ID: "rec-3", Title: "Lemon Tart", Description: "Sharp curd in a buttery shell.", Image: "/uploads/recipes/rec-3.jpg", UserID: demo.ID, CategoryID: "cat-dessert"},
	}
	for i, r := range seeds {
		r.CreatedAt = time.Now().Add(time.Duration(-i) * time.Hour)
		s.recipes[r.ID] = r
	}

	s.notifications["not-1"] = &notification{
		ID: "not-1", UserID: demo.ID, Type: "like",
		Title: "New like", Message: "Someone liked Shakshuka",
		CreatedAt: time.Now().Add(-30 * time.Minute),
	}
}

// --- auth ---

func (s *Server) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email && u.Password == body.Password {
			c.JSON(http.StatusOK, gin.H{"data": gin.H{
				"token": s.token(u.ID),
				"user":  wireUser(u),
			}})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
}

func (s *Server) register(c *gin.Context) {
	var body struct {
		UserName string `json:"userName"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	name := body.Name
	if name == "" {
		name = body.UserName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
	}
	u := &user{ID: "u-" + uuid.NewString(), Name: name, Email: body.Email, Password: body.Password}
	s.users[u.ID] = u

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"accessToken": s.token(u.ID),
		"user":        wireUser(u),
	}})
}

func (s *Server) token(userID string) string {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return ""
	}
	return signed
}

// --- users ---

func (s *Server) getUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, wireUser(u))
}

func (s *Server) uploadAvatar(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if _, err := c.FormFile("image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	u.Avatar = fmt.Sprintf("/uploads/avatars/%s.jpg", u.ID)
	c.JSON(http.StatusOK, gin.H{"userProfilePicture": u.Avatar})
}

// wireUser answers in the legacy shape: userName and profileImage.
func wireUser(u *user) gin.H {
	return gin.H{
		"_id":          u.ID,
		"userName":     u.Name,
		"email":        u.Email,
		"profileImage": u.Avatar,
	}
}

// --- recipes ---

// listRecipes answers a bare array. Odd seeds come back in the legacy shape
// with a bare category id, even ones in the modern shape with the category
// and user embedded.
func (s *Server) listRecipes(c *gin.Context) {
	userID := c.Query("user_id")
	categoryID := c.Query("category_id")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0, len(s.recipes))
	legacy := true
	for _, r := range s.sortedRecipes() {
		if userID != "" && r.UserID != userID {
			continue
		}
		if categoryID != "" && r.CategoryID != categoryID {
			continue
		}
		if legacy {
			out = append(out, s.wireRecipeLegacy(r))
		} else {
			out = append(out, s.wireRecipeModern(r))
		}
		legacy = !legacy
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getRecipe(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	// The detail endpoint wraps the record in a data envelope.
	c.JSON(http.StatusOK, gin.H{"data": s.wireRecipeModern(r)})
}

func (s *Server) createRecipe(c *gin.Context) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		UserID      string `json:"user_id"`
		CategoryID  string `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := &recipe{
		ID:          "rec-" + uuid.NewString(),
		Title:       body.Title,
		Description: body.Description,
		UserID:      body.UserID,
		CategoryID:  body.CategoryID,
		CreatedAt:   time.Now(),
	}
	s.recipes[r.ID] = r
	c.JSON(http.StatusCreated, gin.H{"recipe": s.wireRecipeModern(r)})
}

func (s *Server) uploadRecipeImage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	if _, err := c.FormFile("image"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	r.Image = fmt.Sprintf("/uploads/recipes/%s.jpg", r.ID)
	c.JSON(http.StatusOK, gin.H{"imagePath": r.Image})
}

func (s *Server) wireRecipeLegacy(r *recipe) gin.H {
	out := gin.H{
		"_id":         r.ID,
		"recipeName":  r.Title,
		"description": r.Description,
		"imagePath":   r.Image,
		"user_id":     r.UserID,
		"createdAt":   r.CreatedAt.Format(time.RFC3339),
	}
	if u, ok := s.users[r.UserID]; ok {
		out["userName"] = u.Name
	}
	if r.CategoryID != "" {
		out["category_id"] = r.CategoryID
	}
	return out
}

func (s *Server) wireRecipeModern(r *recipe) gin.H {
	out := gin.H{
		"id":          r.ID,
		"title":       r.Title,
		"description": r.Description,
		"image":       r.Image,
		"created_at":  r.CreatedAt.Format(time.RFC3339),
	}
	if u, ok := s.users[r.UserID]; ok {
		out["user"] = wireUser(u)
	} else {
		out["user_id"] = r.UserID
	}
	if cat, ok := s.categories[r.CategoryID]; ok {
		out["category"] = []gin.H{{"_id": cat.ID, "categoryName": cat.Name}}
	}
	return out
}

func (s *Server) sortedRecipes() []*recipe {
	out := make([]*recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// --- categories ---

// listCategories wraps the collection under its name, legacy style.
func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0, len(s.categories))
	for _, cat := range s.categories {
		out = append(out, gin.H{"_id": cat.ID, "categoryName": cat.Name})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (s *Server) getCategory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.categories[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": cat.ID, "categoryName": cat.Name})
}

func (s *Server) createCategory(c *gin.Context) {
	var body struct {
		CategoryName string `json:"categoryName"`
		Name         string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	name := body.CategoryName
	if name == "" {
		name = body.Name
	}
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := &category{ID: "cat-" + uuid.NewString(), Name: name}
	s.categories[cat.ID] = cat
	c.JSON(http.StatusCreated, gin.H{"_id": cat.ID, "categoryName": cat.Name})
}

// --- likes ---

func (s *Server) listLikes(c *gin.Context) {
	recipeID := c.Query("recipe_id")
	userID := c.Query("user_id")
	likeType := c.Query("type")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0)
	for _, l := range s.likes {
		if recipeID != "" && l.RecipeID != recipeID {
			continue
		}
		if userID != "" && l.UserID != userID {
			continue
		}
		if likeType != "" && l.Type != likeType {
			continue
		}
		out = append(out, wireLike(l))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (s *Server) createLike(c *gin.Context) {
	var body struct {
		RecipeID string `json:"recipe_id"`
		UserID   string `json:"user_id"`
		Type     string `json:"type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.RecipeID == "" || body.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id and user_id required"})
		return
	}
	if body.Type == "" {
		body.Type = "like"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.RecipeID == body.RecipeID && l.UserID == body.UserID {
			c.JSON(http.StatusConflict, gin.H{"error": "reaction already exists"})
			return
		}
	}
	l := &like{ID: "like-" + uuid.NewString(), RecipeID: body.RecipeID, UserID: body.UserID, Type: body.Type}
	s.likes[l.ID] = l
	c.JSON(http.StatusCreated, gin.H{"like": wireLike(l)})
}

func (s *Server) updateLike(c *gin.Context) {
	var body struct {
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.likes[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "like not found"})
		return
	}
	l.Type = body.Type
	c.JSON(http.StatusOK, gin.H{"like": wireLike(l)})
}

func (s *Server) deleteLike(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.likes[c.Param("id")]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "like not found"})
		return
	}
	delete(s.likes, c.Param("id"))
	c.Status(http.StatusNoContent)
}

func wireLike(l *like) gin.H {
	return gin.H{
		"_id":       l.ID,
		"recipe_id": l.RecipeID,
		"user_id":   l.UserID,
		"type":      l.Type,
	}
}

// --- notifications ---

func (s *Server) listNotifications(c *gin.Context) {
	userID := c.Query("user_id")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0)
	for _, n := range s.notifications {
		if userID != "" && n.UserID != userID {
			continue
		}
		out = append(out, gin.H{
			"_id":       n.ID,
			"type":      n.Type,
			"title":     n.Title,
			"message":   n.Message,
			"isRead":    n.Read,
			"createdAt": n.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	n.Read = true
	c.JSON(http.StatusOK, gin.H{"_id": n.ID, "isRead": true})
}
