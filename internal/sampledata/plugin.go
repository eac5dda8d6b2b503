// Package sampledata generates demo content through a host content model, one
// externally triggered step at a time.
//
// Step 1 creates a category and, when enabled, a menu with a category-blog item
// and a batch of custom fields. Every later step adds a batch of articles to
// that category, optionally with one menu item each. Which category, menu and
// fields belong to the current run is carried between steps in UserState.
package sampledata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/johnwards/sampledata/internal/domain"
	"github.com/johnwards/sampledata/internal/logfields"
	"github.com/johnwards/sampledata/internal/lorem"
	"github.com/johnwards/sampledata/internal/metrics"
)

const (
	contentExtension = "com_content"
	categoryBlogLink = "index.php?option=com_content&view=category&layout=blog&id=%d"
	articleLink      = "index.php?option=com_content&view=article&id=%d"
)

var (
	errCategoryNotFound = errors.New("category ID not found")
	errMenuTypeNotFound = errors.New("menutype not found")
)

// Settings configures a Plugin.
type Settings struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	// Steps is the number of steps the host UI should run.
	Steps           int    `yaml:"steps"`
	CreateMenu      bool   `yaml:"create_menu"`
	CreateFields    bool   `yaml:"create_fields"`
	ArticlesPerStep int    `yaml:"articles_per_step"`
	FieldsPerRun    int    `yaml:"fields_per_run"`
	CategoryPrefix  string `yaml:"category_prefix"`
	MenuTypePrefix  string `yaml:"menutype_prefix"`
}

// DefaultSettings returns the settings of the "bigdata" generator.
func DefaultSettings() Settings {
	return Settings{
		Name:            "bigdata",
		Title:           "Big Data sample",
		Description:     "Generates random content: one category (per run) with articles (10 per step), and (when enabled) menu item and custom fields for each article. Can be run multiple times.",
		Icon:            "bolt",
		Steps:           221,
		CreateMenu:      false,
		CreateFields:    true,
		ArticlesPerStep: 10,
		FieldsPerRun:    10,
		CategoryPrefix:  "Big data",
		MenuTypePrefix:  "bigd",
	}
}

// Overview describes a plugin to the host UI.
type Overview struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Steps       int    `json:"steps"`
}

// StepRequest identifies the step to apply.
type StepRequest struct {
	// Type selects the plugin; a plugin ignores requests for other types.
	Type string
	Step int
	// UserID is the acting user, used as the default author of new records.
	UserID int64
}

// Response is reported back to the host UI after every step.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Option customises a Plugin.
type Option func(*Plugin)

// WithText sets the filler text generator.
func WithText(g *lorem.Generator) Option {
	return func(p *Plugin) { p.text = g }
}

// WithClock sets the clock used for titles, menutypes and alias suffixes.
func WithClock(now func() time.Time) Option {
	return func(p *Plugin) { p.now = now }
}

// WithRecorder sets the metrics recorder for created records.
func WithRecorder(r metrics.Recorder) Option {
	return func(p *Plugin) { p.metrics = r }
}

// Plugin is a stepwise sample-data generator.
type Plugin struct {
	settings Settings
	host     Host
	text     *lorem.Generator
	now      func() time.Time
	metrics  metrics.Recorder
}

// New creates a Plugin writing through host.
func New(host Host, settings Settings, opts ...Option) *Plugin {
	p := &Plugin{
		settings: settings,
		host:     host,
		now:      time.Now,
		metrics:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.text == nil {
		p.text = lorem.Default()
	}
	return p
}

// Overview returns the plugin description shown before running it.
func (p *Plugin) Overview() Overview {
	return Overview{
		Name:        p.settings.Name,
		Title:       p.settings.Title,
		Description: p.settings.Description,
		Icon:        p.settings.Icon,
		Steps:       p.settings.Steps,
	}
}

// ApplyStep runs one step. The second result is false when req is addressed
// to another plugin, in which case nothing is done. Failures never escape:
// they are reported through the Response.
func (p *Plugin) ApplyStep(ctx context.Context, req StepRequest, state UserState) (resp Response, handled bool) {
	if req.Type != p.settings.Name {
		return Response{}, false
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("sample data step panicked", logfields.Type(req.Type), logfields.Step(req.Step), "panic", rec)
			resp = failed(req.Step, fmt.Errorf("%v", rec))
			handled = true
		}
	}()

	var err error
	if req.Step == 1 {
		err = p.startRun(ctx, req, state)
	} else {
		err = p.addArticleBatch(ctx, req, state)
	}
	if err != nil {
		slog.Warn("sample data step failed", logfields.Type(req.Type), logfields.Step(req.Step), logfields.Error(err))
		return failed(req.Step, err), true
	}

	slog.Debug("sample data step finished", logfields.Type(req.Type), logfields.Step(req.Step))
	return Response{
		Success: true,
		Message: fmt.Sprintf("Step %d finished with great success!", req.Step),
	}, true
}

func failed(step int, err error) Response {
	return Response{
		Success: false,
		Message: fmt.Sprintf("Step %d failed with error: %s", step, err),
	}
}

// startRun creates the category for this run and, depending on settings, the
// menu and custom fields later steps attach to.
func (p *Plugin) startRun(ctx context.Context, req StepRequest, state UserState) error {
	ts := p.now()
	title := p.settings.CategoryPrefix + " " + ts.Format("2006-01-02 15:04:05")

	catIDs, err := p.addCategories(ctx, []*domain.Category{{
		Record:   domain.Record{Title: title},
		ParentID: domain.RootCategoryID,
	}}, contentExtension, req.UserID)
	if err != nil {
		return err
	}
	if err := putState(state, p.key("catids"), catIDs); err != nil {
		return err
	}

	if p.settings.CreateMenu {
		menus, err := p.addMenus(ctx, []*domain.Menu{{
			Title:    title,
			MenuType: p.settings.MenuTypePrefix + "-" + ts.Format("20060102150405"),
		}})
		if err != nil {
			return err
		}
		menuTypes := make([]string, 0, len(menus))
		for _, m := range menus {
			menuTypes = append(menuTypes, m.MenuType)
		}
		if err := putState(state, p.key("menutypes"), menuTypes); err != nil {
			return err
		}

		componentID, err := p.contentComponentID(ctx)
		if err != nil {
			return err
		}
		if _, err := p.addMenuItems(ctx, []*domain.MenuItem{{
			Record:      domain.Record{Title: title},
			MenuType:    menuTypes[0],
			Link:        fmt.Sprintf(categoryBlogLink, catIDs[0]),
			ComponentID: componentID,
		}}, req.UserID); err != nil {
			return err
		}
	}

	if p.settings.CreateFields {
		fields := make([]*domain.Field, 0, p.settings.FieldsPerRun)
		for range p.settings.FieldsPerRun {
			fields = append(fields, &domain.Field{AssignedCatIDs: catIDs})
		}
		created, err := p.addFields(ctx, fields, req.UserID)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(created))
		for _, f := range created {
			names = append(names, f.Name)
		}
		if err := putState(state, p.key("fieldnames"), names); err != nil {
			return err
		}
	}

	return nil
}

// addArticleBatch adds one batch of articles to the category created by
// startRun, plus a menu item per article when menus are enabled.
func (p *Plugin) addArticleBatch(ctx context.Context, req StepRequest, state UserState) error {
	var catIDs []int64
	if err := loadState(state, p.key("catids"), &catIDs); err != nil {
		return err
	}
	if len(catIDs) == 0 || catIDs[0] == 0 {
		return errCategoryNotFound
	}
	catID := catIDs[0]

	var fieldNames []string
	if p.settings.CreateFields {
		if err := loadState(state, p.key("fieldnames"), &fieldNames); err != nil {
			return err
		}
	}

	articles := make([]*domain.Article, 0, p.settings.ArticlesPerStep)
	for range p.settings.ArticlesPerStep {
		a := &domain.Article{CatID: catID}
		if len(fieldNames) > 0 {
			a.Fields = make(map[string]string, len(fieldNames))
			for _, name := range fieldNames {
				a.Fields[name] = ""
			}
		}
		articles = append(articles, a)
	}

	created, err := p.addArticles(ctx, articles, req.UserID)
	if err != nil {
		return err
	}

	if !p.settings.CreateMenu {
		return nil
	}

	var menuTypes []string
	if err := loadState(state, p.key("menutypes"), &menuTypes); err != nil {
		return err
	}
	if len(menuTypes) == 0 || menuTypes[0] == "" {
		return errMenuTypeNotFound
	}

	componentID, err := p.contentComponentID(ctx)
	if err != nil {
		return err
	}
	items := make([]*domain.MenuItem, 0, len(created))
	for _, a := range created {
		items = append(items, &domain.MenuItem{
			Record:      domain.Record{Title: a.Title},
			MenuType:    menuTypes[0],
			Link:        fmt.Sprintf(articleLink, a.ID),
			ComponentID: componentID,
		})
	}
	_, err = p.addMenuItems(ctx, items, req.UserID)
	return err
}

func (p *Plugin) key(name string) string {
	return stateKey(p.settings.Name, name)
}

func (p *Plugin) contentComponentID(ctx context.Context) (int64, error) {
	c, err := p.host.Components.Lookup(ctx, contentExtension)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}
