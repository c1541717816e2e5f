package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"luxera-storefront/internal/checkout"
	"luxera-storefront/internal/contact"
)

const sessionCookie = "luxera_session"

const flowCtxKey = "checkoutFlow"
const sessionIDCtxKey = "sessionID"

// sessionMiddleware binds a checkout flow to the browser session. The
// cookie stands in for the SPA's navigation-carried state: a browser that
// arrives without it gets a fresh flow in Browsing, which is what makes
// the entry-guard redirects fire on direct deep links.
func sessionMiddleware(sessions *checkout.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		newID, flow := sessions.GetOrCreate(id)
		if newID != id {
			c.SetCookie(sessionCookie, newID, 0, "/", "", false, true)
		}
		c.Set(flowCtxKey, flow)
		c.Set(sessionIDCtxKey, newID)
		c.Next()
	}
}

func flowFrom(c *gin.Context) *checkout.Flow {
	return c.MustGet(flowCtxKey).(*checkout.Flow)
}

func sessionIDFrom(c *gin.Context) string {
	return c.MustGet(sessionIDCtxKey).(string)
}

// formRegistry lazily creates one contact form per session so the
// submitted banner is session-scoped like everything else. Entries expire
// on read with the same TTL as the checkout sessions.
type formRegistry struct {
	newForm func() *contact.Form
	ttl     time.Duration

	mu    sync.Mutex
	forms map[string]*formEntry
}

type formEntry struct {
	form      *contact.Form
	expiresAt time.Time
}

func newFormRegistry(newForm func() *contact.Form, ttl time.Duration) *formRegistry {
	return &formRegistry{
		newForm: newForm,
		ttl:     ttl,
		forms:   make(map[string]*formEntry),
	}
}

func (r *formRegistry) forSession(id string) *contact.Form {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.forms[id]
	if ok && now.After(entry.expiresAt) {
		delete(r.forms, id)
		ok = false
	}
	if !ok {
		entry = &formEntry{form: r.newForm()}
		r.forms[id] = entry
	}
	entry.expiresAt = now.Add(r.ttl)
	return entry.form
}

// redirect issues the entry-guard redirect. Missing-context is not an
// error the user sees; they just land on the nearest valid earlier step.
func redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusSeeOther, target)
	c.Abort()
}
