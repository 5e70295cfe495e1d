package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// The session is a bare marker cookie: holding the exact value is the whole
// capability. Confidentiality rests on HttpOnly/Secure and transport
// security; there is no signing and no server-side session state, so an
// expired or deleted cookie takes effect on the very next request.
const (
	sessionCookieName   = "admin_session"
	sessionCookieValue  = "true"
	sessionCookieMaxAge = 24 * 60 * 60
)

// User-facing messages, matching the public site language.
const (
	msgInvalidCredentials = "Credenciales inválidas"
	msgServerMisconfig    = "Error de configuración del servidor"
	msgUnauthorized       = "No autorizado"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	if a.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Acceso administrador",
	})
}

// Login validates the submitted credentials against the environment-provided
// pair. When either expected value is missing the gate fails closed with a
// distinct configuration error rather than falling back to a default
// credential.
func (a *API) Login(c *gin.Context) {
	user := c.PostForm("username")
	pass := c.PostForm("password")

	if a.cfg.AdminUser == "" || a.cfg.AdminPass == "" {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": "Acceso administrador",
			"error": msgServerMisconfig,
		})
		return
	}

	if user != a.cfg.AdminUser || pass != a.cfg.AdminPass {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Acceso administrador",
			"error": msgInvalidCredentials,
		})
		return
	}

	a.setSessionCookie(c)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout deletes the session cookie unconditionally.
func (a *API) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", a.cfg.CookieSecure(), true)
	c.Redirect(http.StatusFound, "/admin/login")
}

// AuthRequired gates every admin route. Authorization is re-checked on each
// call; HTML requests are redirected to the login page while API requests
// get a 401 so the client can distinguish it from validation failures.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.isAuthenticated(c) {
			c.Next()
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/admin/api") {
			respondError(c, http.StatusUnauthorized, msgUnauthorized)
		} else {
			c.Redirect(http.StatusFound, "/admin/login")
		}
		c.Abort()
	}
}

// isAuthenticated returns true only when the cookie holds the exact marker
// value. Anything else, including near-misses like "True", is anonymous.
func (a *API) isAuthenticated(c *gin.Context) bool {
	value, err := c.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return value == sessionCookieValue
}

func (a *API) setSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, sessionCookieValue, sessionCookieMaxAge, "/", "", a.cfg.CookieSecure(), true)
}
