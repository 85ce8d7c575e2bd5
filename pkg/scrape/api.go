package scrape

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/DataFiling/ScrapeHawk/internal/cache"
	"github.com/DataFiling/ScrapeHawk/internal/scraper"
	"github.com/DataFiling/ScrapeHawk/models"
)

type ScrapeAPI struct {
	client *scraper.HttpClient
	store  *cache.Store
	log    *log.Logger
}

func NewScrapeAPI(client *scraper.HttpClient, store *cache.Store) *ScrapeAPI {
	return &ScrapeAPI{
		client: client,
		store:  store,
		log:    log.New(os.Stdout, "[ScrapeAPI] ", log.LstdFlags),
	}
}

func (api *ScrapeAPI) RegisterRoutes(app *fiber.App) {
	app.Get("/", api.rootHandler)
	app.Get("/health", api.healthHandler)
	app.Get("/scrape", api.scrapeHandler)
	app.Get("/scrape/links", api.linksHandler)
	app.Get("/scrape/meta", api.metaHandler)
}

func (api *ScrapeAPI) rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Scraper API is running",
	})
}

func (api *ScrapeAPI) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

func (api *ScrapeAPI) scrapeHandler(c *fiber.Ctx) error {
	// Query strings alias fasthttp's reusable request buffer; both values
	// outlive the handler through the cache entry, so they must be copied.
	pageUrl := utils.CopyString(c.Query("url", ""))
	if pageUrl == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing required query parameter: url",
		})
	}
	selector := utils.CopyString(c.Query("selector", ""))

	key := cache.Key(pageUrl, selector)
	if result, ok := api.store.Get(key); ok {
		result.Cached = true
		return c.JSON(result)
	}

	body, err := api.client.Fetch(c.UserContext(), pageUrl)
	if err != nil {
		api.log.Printf("fetch failed for %s: %v", pageUrl, err)
		return c.Status(fetchErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	doc := scraper.ParseDocument(body)
	result := models.ScrapeResult{
		URL:     pageUrl,
		Title:   doc.Title(),
		Content: scraper.ExtractText(doc, selector),
		Cached:  false,
	}
	api.store.Put(key, result)
	return c.JSON(result)
}

func (api *ScrapeAPI) linksHandler(c *fiber.Ctx) error {
	pageUrl := c.Query("url", "")
	if pageUrl == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing required query parameter: url",
		})
	}
	externalOnly := c.QueryBool("external_only", false)

	base, err := url.Parse(pageUrl)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("invalid url: %v", err),
		})
	}

	body, err := api.client.Fetch(c.UserContext(), pageUrl)
	if err != nil {
		api.log.Printf("fetch failed for %s: %v", pageUrl, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	doc := scraper.ParseDocument(body)
	links := scraper.ExtractLinks(doc, base, externalOnly)
	return c.JSON(models.LinksResult{
		URL:        pageUrl,
		TotalLinks: len(links),
		Links:      links,
	})
}

func (api *ScrapeAPI) metaHandler(c *fiber.Ctx) error {
	pageUrl := c.Query("url", "")
	if pageUrl == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing required query parameter: url",
		})
	}

	body, err := api.client.Fetch(c.UserContext(), pageUrl)
	if err != nil {
		api.log.Printf("fetch failed for %s: %v", pageUrl, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	doc := scraper.ParseDocument(body)
	return c.JSON(scraper.ExtractMetadata(doc, pageUrl))
}

// fetchErrorStatus maps the fetch error taxonomy to a response status:
// timeouts become 504, an upstream non-2xx is forwarded as-is and every
// other transport fault is a 500.
func fetchErrorStatus(err error) int {
	var timeoutErr *scraper.TimeoutError
	if errors.As(err, &timeoutErr) {
		return fiber.StatusGatewayTimeout
	}
	var statusErr *scraper.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return fiber.StatusInternalServerError
}
