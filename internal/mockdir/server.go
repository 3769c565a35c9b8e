// Package mockdir is an in-process stand-in for the remote directory
// service, used for local development and integration tests. It implements
// the same HTTP/JSON contract the client's gateway targets: login issuing a
// token, a paged user listing, and create/update/delete echoes.
//
// The mock is deliberately shallow: like the reference service, it does not
// reflect creates, updates, or deletes in later listings.
package mockdir

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/userdir/internal/common"
)

const defaultPerPage = 6

// seed is the fixed listing the mock serves, in the reference service's
// record shape.
var seed = []map[string]any{
	{"id": 1, "first_name": "George", "last_name": "Bluth", "email": "george.bluth@mockdir.test", "avatar": "https://mockdir.test/img/1.jpg"},
	{"id": 2, "first_name": "Janet", "last_name": "Weaver", "email": "janet.weaver@mockdir.test", "avatar": "https://mockdir.test/img/2.jpg"},
	{"id": 3, "first_name": "Emma", "last_name": "Wong", "email": "emma.wong@mockdir.test", "avatar": "https://mockdir.test/img/3.jpg"},
	{"id": 4, "first_name": "Eve", "last_name": "Holt", "email": "eve.holt@mockdir.test", "avatar": "https://mockdir.test/img/4.jpg"},
	{"id": 5, "first_name": "Charles", "last_name": "Morris", "email": "charles.morris@mockdir.test", "avatar": "https://mockdir.test/img/5.jpg"},
	{"id": 6, "first_name": "Tracey", "last_name": "Ramos", "email": "tracey.ramos@mockdir.test", "avatar": "https://mockdir.test/img/6.jpg"},
	{"id": 7, "first_name": "Michael", "last_name": "Lawson", "email": "michael.lawson@mockdir.test", "avatar": "https://mockdir.test/img/7.jpg"},
	{"id": 8, "first_name": "Lindsay", "last_name": "Ferguson", "email": "lindsay.ferguson@mockdir.test", "avatar": "https://mockdir.test/img/8.jpg"},
	{"id": 9, "first_name": "Tobias", "last_name": "Funke", "email": "tobias.funke@mockdir.test", "avatar": "https://mockdir.test/img/9.jpg"},
	{"id": 10, "first_name": "Byron", "last_name": "Fields", "email": "byron.fields@mockdir.test", "avatar": "https://mockdir.test/img/10.jpg"},
	{"id": 11, "first_name": "George", "last_name": "Edwards", "email": "george.edwards@mockdir.test", "avatar": "https://mockdir.test/img/11.jpg"},
	{"id": 12, "first_name": "Rachel", "last_name": "Howell", "email": "rachel.howell@mockdir.test", "avatar": "https://mockdir.test/img/12.jpg"},
}

// New builds the echo instance serving the directory contract under /api.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api := e.Group("/api", requireAPIKey)
	api.POST("/login", login)
	api.GET("/users", listUsers)
	api.POST("/users", createUser)
	api.PUT("/users/:id", updateUser)
	api.DELETE("/users/:id", deleteUser)

	return e
}

// requireAPIKey rejects requests missing the identification header, the way
// the reference service does.
func requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(common.APIKeyHeaderName) == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing API key"})
		}
		return next(c)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing email or username"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing password"})
	}

	token, err := common.MakeRandHexString(12)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func listUsers(c echo.Context) error {
	perPage := defaultPerPage
	if v := c.QueryParam("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid per_page"})
		}
		perPage = n
	}
	if perPage > len(seed) {
		perPage = len(seed)
	}

	totalPages := 0
	if perPage > 0 {
		totalPages = (len(seed) + perPage - 1) / perPage
	}

	return c.JSON(http.StatusOK, echo.Map{
		"page":        1,
		"per_page":    perPage,
		"total":       len(seed),
		"total_pages": totalPages,
		"data":        seed[:perPage],
	})
}

func createUser(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	// Echo the payload back with a service-assigned id the client is known
	// to ignore.
	resp := echo.Map{"id": "842", "createdAt": nowRFC3339()}
	for k, v := range fields {
		resp[k] = v
	}
	return c.JSON(http.StatusCreated, resp)
}

func updateUser(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	resp := echo.Map{"updatedAt": nowRFC3339()}
	for k, v := range fields {
		resp[k] = v
	}
	return c.JSON(http.StatusOK, resp)
}

func deleteUser(c echo.Context) error {
	if _, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	return c.NoContent(http.StatusNoContent)
}
