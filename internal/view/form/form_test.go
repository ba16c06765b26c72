package form

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/domain/entity"
)

func sampleProject() *entity.Project {
	return &entity.Project{
		ID:                 "p1",
		Title:              "Portfolio",
		Thumbnail:          "https://img.example.com/p.png",
		Description:        "A personal portfolio site",
		ProjectRole:        entity.RoleFullstack,
		TechnologiesUsed:   []string{"Go", "React", "MongoDB"},
		KeyFeatures:        []string{"Auth", "Blog"},
		LiveLink:           "https://example.com",
		FrontendSourceCode: "https://github.com/x/front",
		IsFeatured:         true,
	}
}

/* ───────── Schema ───────── */

func TestProjectSchema_UpdateRoundTrip(t *testing.T) {
	schema := ProjectSchema()
	orig := sampleProject()

	got := schema.Decode(schema.Encode(orig))

	if diff := cmp.Diff(orig, got, cmpopts.IgnoreFields(entity.Project{}, "ID")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemas_RoundTripIdempotent(t *testing.T) {
	skill := &entity.Skill{Name: "Golang", Icon: "https://x.dev/go.svg", Category: entity.SkillBackend}
	ss := SkillSchema()
	once := ss.Encode(ss.Decode(ss.Encode(skill)))
	assert.Equal(t, ss.Encode(skill), once)

	blog := &entity.Blog{Title: "Hello", MainContent: "<p>Hello world</p>", Tags: []string{"go", "web"}}
	bs := BlogSchema()
	if diff := cmp.Diff(blog, bs.Decode(bs.Encode(blog))); diff != "" {
		t.Errorf("blog round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_ListSplitting(t *testing.T) {
	p := ProjectSchema().Decode(url.Values{
		"technologiesUsed": {"react,"},
		"keyFeatures":      {" a , a ,b"},
	})
	assert.Equal(t, []string{"react", ""}, p.TechnologiesUsed)
	assert.Equal(t, []string{"a", "a", "b"}, p.KeyFeatures)
}

func TestDecode_Checkbox(t *testing.T) {
	schema := ProjectSchema()
	assert.True(t, schema.Decode(url.Values{"isFeatured": {"on"}}).IsFeatured)
	assert.True(t, schema.Decode(url.Values{"isFeatured": {"true"}}).IsFeatured)
	assert.False(t, schema.Decode(url.Values{}).IsFeatured)
}

func TestFields_ViewModel(t *testing.T) {
	fields := ProjectSchema().Fields(url.Values{"projectRole": {"backend"}}, map[string]string{"title": "too short"})

	require.Len(t, fields, 11)
	assert.Equal(t, "title", fields[0].Name)
	assert.Equal(t, "too short", fields[0].Error)

	role := fields[3]
	assert.Equal(t, KindSelect, role.Kind)
	require.Len(t, role.Options, 4)
	assert.True(t, role.Selected(Option{Value: "backend"}))
	assert.Equal(t, "UI/UX", role.Options[3].Label)

	assert.Equal(t, entity.TechnologySuggestions, fields[4].Suggestions)
	assert.Equal(t, KindCheckbox, fields[10].Kind)
	assert.False(t, fields[10].Checked())
}

/* ───────── State machine ───────── */

func TestMachine_Transitions(t *testing.T) {
	var m Machine
	assert.Equal(t, Idle, m.State())

	require.NoError(t, m.Submit())
	assert.ErrorIs(t, m.Submit(), ErrInvalidTransition, "double submit")

	require.NoError(t, m.Fail("Title is required"))
	assert.Equal(t, Failure, m.State())
	assert.Equal(t, "Title is required", m.Message())

	require.NoError(t, m.Reset())
	require.NoError(t, m.Submit())
	assert.Empty(t, m.Message())
	require.NoError(t, m.Succeed("Saved"))

	assert.ErrorIs(t, m.Reset(), ErrInvalidTransition)
	assert.ErrorIs(t, m.Fail("x"), ErrInvalidTransition)
	assert.Equal(t, "success", m.State().String())
}

/* ───────── Submit ───────── */

func projectForm() Definition[entity.Project] {
	return Definition[entity.Project]{Title: "Create Project", Action: "/projects/create-project", Schema: ProjectSchema()}
}

func TestSubmit_Success(t *testing.T) {
	values := ProjectSchema().Encode(sampleProject())
	var sent *entity.Project

	out := projectForm().Submit(context.Background(), ModeCreate, values,
		func(_ context.Context, p *entity.Project) (*entity.Project, error) {
			sent = p
			saved := *p
			saved.ID = "new"
			return &saved, nil
		},
		func(error) string { return "unused" },
		"Project created successfully")

	require.True(t, out.OK())
	assert.Equal(t, "new", out.Value.ID)
	assert.Equal(t, "Portfolio", sent.Title)
	assert.Equal(t, "Project created successfully", out.View.Message)
	assert.False(t, out.View.Failed())
}

func TestSubmit_ValidationFailureKeepsValues(t *testing.T) {
	values := url.Values{"title": {"Go"}}

	out := projectForm().Submit(context.Background(), ModeCreate, values,
		func(_ context.Context, p *entity.Project) (*entity.Project, error) {
			return nil, p.Validate()
		},
		func(err error) string {
			var ves entity.ValidationErrors
			if errors.As(err, &ves) {
				return ves.First().Message
			}
			return "generic"
		},
		"ok")

	assert.False(t, out.OK())
	assert.Nil(t, out.Value)
	assert.True(t, out.View.Failed())
	assert.Equal(t, "Title must be at least 3 characters long", out.View.Message)
	assert.Equal(t, "Go", out.View.Fields[0].Value)
	assert.Equal(t, "Title must be at least 3 characters long", out.View.Fields[0].Error)
}

func TestSubmit_RemoteFailure(t *testing.T) {
	out := projectForm().Submit(context.Background(), ModeUpdate, url.Values{},
		func(context.Context, *entity.Project) (*entity.Project, error) {
			return nil, errors.New("boom")
		},
		func(error) string { return "Something went wrong!" },
		"ok")

	assert.Equal(t, "Something went wrong!", out.View.Message)
	assert.Equal(t, ModeUpdate, out.View.Mode)
	for _, f := range out.View.Fields {
		assert.Empty(t, f.Error)
	}
}

func TestDefinition_CreateAndUpdate(t *testing.T) {
	d := projectForm()

	create := d.Create()
	assert.Equal(t, ModeCreate, create.Mode)
	assert.Equal(t, "Submit", create.SubmitLabel)
	for _, f := range create.Fields {
		assert.Empty(t, f.Value, f.Name)
	}

	update := d.Update(sampleProject())
	assert.Equal(t, ModeUpdate, update.Mode)
	assert.Equal(t, "Go, React, MongoDB", update.Fields[4].Value)
	assert.True(t, update.Fields[10].Checked())
}
