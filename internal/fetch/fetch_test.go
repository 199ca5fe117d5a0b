package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Jane Doe</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Jane Doe</h1>")
	assert.Equal(t, "text/html", result.ContentType)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tester", r.Header.Get("User-Agent"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "tester",
		Headers:   map[string]string{"Accept-Language": "en"},
	})
	require.NoError(t, err)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_KeepsLineStructure(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Home | Blog</nav>
			<main>
				<header><h1>Jane Doe</h1><span>jane@example.com</span></header>
				<h2>Skills</h2>
				<ul><li>Go</li><li>Kubernetes</li></ul>
				<h2>Experience</h2>
				<p>Senior Engineer at <b>Acme</b></p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\nSkills\n• Go\n• Kubernetes\nExperience\nSenior Engineer at Acme", text)
}

func TestExtractMainText_TableRows(t *testing.T) {
	html := `<body><table>
		<tr><th>Degree</th><th>School</th><th></th></tr>
		<tr><td>BSc</td><td>State University</td></tr>
	</table></body>`

	text, err := ExtractMainText(html, nil)
	require.NoError(t, err)
	assert.Equal(t, "Degree | School\nBSc | State University", text)
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `<html><body><div>Some content here.</div><script>var x;</script></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Some content here.", text)
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<body><div class="ads">Buy now</div><div id="resume">Jane Doe</div></body>`

	text, err := ExtractMainText(html, DefaultTextSelectors(), ".ads")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)
}

func TestDefaultTextSelectors(t *testing.T) {
	selectors := DefaultTextSelectors()
	assert.Contains(t, selectors, "main")
	assert.Contains(t, selectors, "#resume")
}
