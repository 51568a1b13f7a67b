package social

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/pulsebot/pulsebot/pkg/types"
)

const (
	homeURL    = "https://x.com/home"
	loginURL   = "https://x.com/i/flow/login"
	composeURL = "https://x.com/compose/post"

	elementTimeout = 10 * time.Second
	loginAttempts  = 3
)

var statusIDPattern = regexp.MustCompile(`/status/(\d+)`)

// challengeMarkers in the page after a login attempt mean the platform is
// asking for out-of-band verification, which this client cannot complete.
var challengeMarkers = []string{
	"verify your identity",
	"suspicious login",
	"confirmation code",
	"unlock your account",
}

// RodConfig holds configuration for the browser-backed client.
type RodConfig struct {
	Username    string // If empty, uses PLATFORM_USERNAME env var
	Password    string // If empty, uses PLATFORM_PASSWORD env var
	SessionFile string // Cookie store path; empty disables persistence
	Headless    bool
	ControlURL  string // Attach to an existing browser instead of launching

	// ScreenshotDir receives a page capture on each login failure branch,
	// for diagnosing selector drift. Empty disables captures.
	ScreenshotDir string
}

// RodClient implements Client with a go-rod driven browser.
type RodClient struct {
	cfg      RodConfig
	browser  *rod.Browser
	page     *rod.Page
	launched bool
	sleep    func(time.Duration)
}

// NewRodClient creates an unconnected client. Call Init before use.
func NewRodClient(cfg RodConfig) *RodClient {
	if cfg.Username == "" {
		cfg.Username = os.Getenv("PLATFORM_USERNAME")
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv("PLATFORM_PASSWORD")
	}
	return &RodClient{cfg: cfg, sleep: time.Sleep}
}

// Init opens the browser, restores cookies, and verifies the session. If the
// saved session is stale it runs the credential login flow.
func (c *RodClient) Init(ctx context.Context) error {
	controlURL := c.cfg.ControlURL
	if controlURL == "" {
		url, err := launcher.New().Headless(c.cfg.Headless).Launch()
		if err != nil {
			return fmt.Errorf("launch browser: %w", err)
		}
		controlURL = url
		c.launched = true
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to browser: %w", err)
	}
	c.browser = browser

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	c.page = page

	if err := c.restoreCookies(); err != nil {
		log.Printf("social: cookie restore failed, continuing without: %v", err)
	}

	if err := c.navigate(ctx, homeURL); err != nil {
		return fmt.Errorf("open home: %w", err)
	}
	c.sleep(3 * time.Second)

	if c.isLoggedIn() {
		log.Printf("social: restored session is valid")
		return nil
	}

	log.Printf("social: no valid session, starting credential login")
	if err := c.autoLogin(ctx); err != nil {
		return err
	}
	if err := c.saveCookies(); err != nil {
		log.Printf("social: cookie save failed: %v", err)
	}
	return nil
}

// Close tears down the page and browser.
func (c *RodClient) Close() error {
	if c.page != nil {
		_ = c.page.Close()
		c.page = nil
	}
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		if err != nil {
			return fmt.Errorf("close browser: %w", err)
		}
	}
	return nil
}

// PostUpdate publishes a single post from the home composer.
func (c *RodClient) PostUpdate(ctx context.Context, text string) error {
	if err := c.navigate(ctx, homeURL); err != nil {
		return fmt.Errorf("open home: %w", err)
	}
	c.sleep(2 * time.Second)

	if err := c.clickAny(
		`a[data-testid="SideNav_NewTweet_Button"]`,
		`[data-testid="SideNav_NewTweet_Button"]`,
		`[data-testid="FloatingActionButton_Tweet"]`,
	); err != nil {
		// The compose box is sometimes inline on the home timeline; fall
		// through and look for the textarea directly.
		log.Printf("social: compose button not found, trying inline composer: %v", err)
	}

	box, err := c.elementAny(
		`div[role="textbox"][data-testid="tweetTextarea_0"]`,
		`div[contenteditable="true"][data-testid="tweetTextarea_0"]`,
		`[data-testid="tweetTextarea_0"]`,
	)
	if err != nil {
		return fmt.Errorf("find composer: %w", err)
	}
	if err := box.Input(text); err != nil {
		return fmt.Errorf("type post: %w", err)
	}
	c.sleep(time.Second)

	if err := c.clickAny(
		`div[data-testid="tweetButtonInline"]`,
		`div[data-testid="tweetButton"]`,
	); err != nil {
		if !c.clickByJS(`[data-testid="tweetButtonInline"]`, `[data-testid="tweetButton"]`) {
			return fmt.Errorf("submit post: %w", err)
		}
	}
	c.sleep(3 * time.Second)
	return nil
}

// PostThread publishes parts as one connected thread.
func (c *RodClient) PostThread(ctx context.Context, parts []string) error {
	if len(parts) == 0 {
		return nil
	}
	if len(parts) == 1 {
		return c.PostUpdate(ctx, parts[0])
	}

	if err := c.navigate(ctx, composeURL); err != nil {
		return fmt.Errorf("open composer: %w", err)
	}
	c.sleep(2 * time.Second)

	first, err := c.elementAny(
		`[data-testid="tweetTextarea_0"]`,
		`div[role="textbox"][data-testid="tweetTextarea_0"]`,
		`div[contenteditable="true"][data-testid="tweetTextarea_0"]`,
	)
	if err != nil {
		return fmt.Errorf("find composer: %w", err)
	}
	if err := first.Input(parts[0]); err != nil {
		return fmt.Errorf("type part 1: %w", err)
	}

	for i, part := range parts[1:] {
		c.sleep(time.Second)
		if err := c.clickAny(`[data-testid="addButton"]`); err != nil {
			if !c.clickByJS(`[data-testid="addButton"]`) {
				return fmt.Errorf("add thread part %d: %w", i+2, err)
			}
		}

		box, err := c.elementAny(fmt.Sprintf(`[data-testid="tweetTextarea_%d"]`, i+1))
		if err != nil {
			return fmt.Errorf("find composer for part %d: %w", i+2, err)
		}
		if err := box.Input(part); err != nil {
			return fmt.Errorf("type part %d: %w", i+2, err)
		}
	}

	c.sleep(time.Second)
	if err := c.clickAny(`[data-testid="tweetButton"]`); err != nil {
		return fmt.Errorf("submit thread: %w", err)
	}
	c.sleep(3 * time.Second)
	return nil
}

// Reply posts text as a comment under the post at url.
func (c *RodClient) Reply(ctx context.Context, url string, text string) error {
	if err := c.navigate(ctx, url); err != nil {
		return fmt.Errorf("open post: %w", err)
	}
	c.sleep(3 * time.Second)

	if err := c.clickAny(`[data-testid="reply"]`); err != nil {
		return fmt.Errorf("open reply box: %w", err)
	}
	c.sleep(time.Second)

	box, err := c.elementAny(`[data-testid="tweetTextarea_0"]`)
	if err != nil {
		return fmt.Errorf("find reply composer: %w", err)
	}
	if err := box.Input(text); err != nil {
		return fmt.Errorf("type reply: %w", err)
	}
	c.sleep(time.Second)

	if err := c.clickAny(
		`[data-testid="tweetButton"]`,
		`div[data-testid="tweetButtonInline"]`,
	); err != nil {
		return fmt.Errorf("submit reply: %w", err)
	}
	c.sleep(3 * time.Second)
	return nil
}

// RecentPosts returns up to max non-pinned posts from username's profile.
func (c *RodClient) RecentPosts(ctx context.Context, username string, window time.Duration, max int) ([]types.Post, error) {
	profileURL := "https://x.com/" + username
	if err := c.navigate(ctx, profileURL); err != nil {
		return nil, fmt.Errorf("open profile @%s: %w", username, err)
	}
	c.sleep(3 * time.Second)

	if _, err := c.page.Timeout(elementTimeout).Element(`article[data-testid="tweet"]`); err != nil {
		return nil, fmt.Errorf("no posts visible for @%s: %w", username, err)
	}

	articles, err := c.page.Elements(`article[data-testid="tweet"]`)
	if err != nil {
		return nil, fmt.Errorf("collect posts for @%s: %w", username, err)
	}

	var posts []types.Post
	for i, article := range articles {
		if len(posts) >= max {
			break
		}

		if pinned, _, err := article.Has(`[data-testid="pin"]`); err == nil && pinned {
			log.Printf("social: skipping pinned post for @%s", username)
			continue
		}

		link, err := article.Element(`a[href*="/status/"]`)
		if err != nil {
			continue
		}
		href, err := link.Attribute("href")
		if err != nil || href == nil {
			continue
		}
		url := *href
		if !strings.HasPrefix(url, "http") {
			url = "https://x.com" + url
		}
		m := statusIDPattern.FindStringSubmatch(url)
		if m == nil {
			continue
		}

		text, err := article.Text()
		if err != nil {
			log.Printf("social: could not read post %d for @%s: %v", i+1, username, err)
			continue
		}

		var timestamp string
		if ok, timeEl, err := article.Has("time"); err == nil && ok {
			if dt, err := timeEl.Attribute("datetime"); err == nil && dt != nil {
				timestamp = *dt
			}
		}

		isRepost := false
		if reposted, _, err := article.Has(`[data-testid="socialContext"]`); err == nil && reposted {
			isRepost = true
		}

		posts = append(posts, types.Post{
			ID:        m[1],
			URL:       url,
			Text:      text,
			Username:  username,
			Timestamp: timestamp,
			IsRepost:  isRepost,
		})
	}

	log.Printf("social: retrieved %d posts for @%s", len(posts), username)
	return posts, nil
}

func (c *RodClient) navigate(ctx context.Context, url string) error {
	page := c.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// isLoggedIn probes for UI elements only present in an authenticated session.
func (c *RodClient) isLoggedIn() bool {
	for _, sel := range []string{
		`[data-testid="SideNav_AccountSwitcher_Button"]`,
		`[data-testid="tweetTextarea_0"]`,
	} {
		if _, err := c.page.Timeout(5 * time.Second).Element(sel); err == nil {
			return true
		}
	}
	return false
}

func (c *RodClient) autoLogin(ctx context.Context) error {
	if c.cfg.Username == "" || c.cfg.Password == "" {
		return fmt.Errorf("%w: PLATFORM_USERNAME or PLATFORM_PASSWORD not set", ErrNotLoggedIn)
	}

	var lastErr error
	for attempt := 1; attempt <= loginAttempts; attempt++ {
		log.Printf("social: login attempt %d/%d", attempt, loginAttempts)
		if err := c.loginOnce(ctx); err != nil {
			lastErr = err
			log.Printf("social: login attempt %d failed: %v", attempt, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrNotLoggedIn, lastErr)
}

func (c *RodClient) loginOnce(ctx context.Context) error {
	if err := c.navigate(ctx, loginURL); err != nil {
		return fmt.Errorf("open login flow: %w", err)
	}

	user, err := c.page.Timeout(elementTimeout).Element(`input[name="text"]`)
	if err != nil {
		c.captureFailure("username_input_not_found")
		return fmt.Errorf("username input not found: %w", err)
	}
	if err := user.Input(c.cfg.Username); err != nil {
		return fmt.Errorf("type username: %w", err)
	}

	next, err := c.page.Timeout(elementTimeout).ElementR(`div[role="button"]`, "Next")
	if err != nil {
		c.captureFailure("next_button_not_found")
		return fmt.Errorf("next button not found: %w", err)
	}
	if err := next.Click(proto.InputMouseButtonLeft, 1); err != nil {
		c.captureFailure("next_button_click_failed")
		return fmt.Errorf("click next: %w", err)
	}
	c.sleep(3 * time.Second)

	pass, err := c.page.Timeout(elementTimeout).Element(`input[name="password"]`)
	if err != nil {
		c.captureFailure("password_input_not_found")
		if marker := c.detectChallenge(); marker != "" {
			return fmt.Errorf("%w: platform challenge: %s", ErrNotLoggedIn, marker)
		}
		return fmt.Errorf("password input not found: %w", err)
	}
	if err := pass.Input(c.cfg.Password); err != nil {
		return fmt.Errorf("type password: %w", err)
	}

	login, err := c.page.Timeout(elementTimeout).ElementR(`div[role="button"]`, "Log in")
	if err != nil {
		return fmt.Errorf("login button not found: %w", err)
	}
	if err := login.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click login: %w", err)
	}
	c.sleep(6 * time.Second)

	info, err := c.page.Info()
	if err != nil {
		return fmt.Errorf("read page info: %w", err)
	}
	if !strings.Contains(info.URL, "home") {
		c.captureFailure("login_failed_final")
		if marker := c.detectChallenge(); marker != "" {
			return fmt.Errorf("%w: platform challenge: %s", ErrNotLoggedIn, marker)
		}
		return fmt.Errorf("landed on %s instead of home", info.URL)
	}
	return nil
}

// captureFailure writes a screenshot of the current page for diagnosing a
// failed login step. Capture errors are logged, never returned; a missing
// screenshot must not change the login outcome.
func (c *RodClient) captureFailure(name string) {
	if c.cfg.ScreenshotDir == "" || c.page == nil {
		return
	}
	data, err := c.page.Screenshot(false, nil)
	if err != nil {
		log.Printf("social: capture %s: %v", name, err)
		return
	}
	if err := os.MkdirAll(c.cfg.ScreenshotDir, 0755); err != nil {
		log.Printf("social: screenshot dir: %v", err)
		return
	}
	path := filepath.Join(c.cfg.ScreenshotDir, name+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("social: write screenshot %s: %v", path, err)
	}
}

// detectChallenge returns the matching challenge marker, or "".
func (c *RodClient) detectChallenge() string {
	body, err := c.page.Timeout(5 * time.Second).Element("body")
	if err != nil {
		return ""
	}
	text, err := body.Text()
	if err != nil {
		return ""
	}
	lower := strings.ToLower(text)
	for _, marker := range challengeMarkers {
		if strings.Contains(lower, marker) {
			return marker
		}
	}
	return ""
}

// elementAny tries selectors in order and returns the first hit.
func (c *RodClient) elementAny(selectors ...string) (*rod.Element, error) {
	var lastErr error
	for _, sel := range selectors {
		el, err := c.page.Timeout(elementTimeout).Element(sel)
		if err == nil {
			return el, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no selector matched %v: %w", selectors, lastErr)
}

func (c *RodClient) clickAny(selectors ...string) error {
	el, err := c.elementAny(selectors...)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// clickByJS clicks the first matching selector from inside the page. Some
// buttons reject synthetic pointer events but accept element.click().
func (c *RodClient) clickByJS(selectors ...string) bool {
	quoted := make([]string, len(selectors))
	for i, sel := range selectors {
		quoted[i] = fmt.Sprintf("%q", sel)
	}
	js := fmt.Sprintf(`() => {
		const selectors = [%s];
		for (const sel of selectors) {
			const el = document.querySelector(sel);
			if (el) { el.click(); return true; }
		}
		return false;
	}`, strings.Join(quoted, ", "))

	res, err := c.page.Evaluate(&rod.EvalOptions{JS: js, ByValue: true})
	if err != nil {
		return false
	}
	return res.Value.Bool()
}

func (c *RodClient) restoreCookies() error {
	if c.cfg.SessionFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.cfg.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var cookies []*proto.NetworkCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}

	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, ck := range cookies {
		params = append(params, &proto.NetworkCookieParam{
			Name:     ck.Name,
			Value:    ck.Value,
			Domain:   ck.Domain,
			Path:     ck.Path,
			Expires:  ck.Expires,
			HTTPOnly: ck.HTTPOnly,
			Secure:   ck.Secure,
			SameSite: ck.SameSite,
			Priority: ck.Priority,
		})
	}
	if len(params) == 0 {
		return nil
	}
	return c.page.SetCookies(params)
}

func (c *RodClient) saveCookies() error {
	if c.cfg.SessionFile == "" {
		return nil
	}
	res, err := proto.NetworkGetCookies{}.Call(c.page)
	if err != nil {
		return fmt.Errorf("read cookies: %w", err)
	}
	data, err := json.MarshalIndent(res.Cookies, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.cfg.SessionFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.cfg.SessionFile, data, 0600)
}
