package hadith

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/M-S-KHAN/hadith-inc/models/constants"

	"github.com/stretchr/testify/require"
)

var testBook = constants.Book{Slug: "sahih-bukhari", Name: "Sahih Bukhari", MaxNumber: 7563}

func newTestService(t *testing.T, handler http.HandlerFunc) *Impl {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Impl{baseURL: server.URL, apiKey: "test-key", client: server.Client()}
}

func TestNewRejectsMissingAPIKey(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestFetchParsesHadith(t *testing.T) {
	var gotQuery string
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"status":200,"hadiths":{"data":[{
			"hadithNumber":"42",
			"hadithEnglish":"The reward of deeds depends upon the intentions.",
			"hadithUrdu":"اعمال کا دارومدار نیتوں پر ہے",
			"englishNarrator":"Narrated 'Umar bin Al-Khattab:",
			"volume":1,
			"book":{"bookName":"Sahih Bukhari"},
			"chapter":{"chapterEnglish":"Revelation"}
		}]}}`))
	})

	h, err := service.Fetch(testBook, 42)
	require.NoError(t, err)
	require.Equal(t, "The reward of deeds depends upon the intentions.", h.English)
	require.Equal(t, "Narrated 'Umar bin Al-Khattab:", h.Narrator)
	require.Equal(t, "Sahih Bukhari", h.BookName)
	require.Equal(t, "42", h.Number)
	require.Equal(t, "Revelation", h.Chapter)
	require.Equal(t, "1", h.Volume)
	require.Contains(t, gotQuery, "apiKey=test-key")
	require.Contains(t, gotQuery, "book=sahih-bukhari")
	require.Contains(t, gotQuery, "hadithNumber=42")
}

func TestFetchReturnsProviderErrorOnNonOKStatus(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := service.Fetch(testBook, 1)
	require.ErrorIs(t, err, ErrProvider)
}

func TestFetchReturnsMalformedErrorOnBadPayload(t *testing.T) {
	for name, body := range map[string]string{
		"not json":       `<html>nope</html>`,
		"empty data":     `{"hadiths":{"data":[]}}`,
		"missing fields": `{"hadiths":{"data":[{"hadithUrdu":"..."}]}}`,
	} {
		t.Run(name, func(t *testing.T) {
			service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			_, err := service.Fetch(testBook, 1)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestFetchReturnsTransportErrorWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	service := &Impl{baseURL: server.URL, apiKey: "test-key", client: server.Client()}
	server.Close()

	_, err := service.Fetch(testBook, 1)
	require.ErrorIs(t, err, ErrTransport)
}
