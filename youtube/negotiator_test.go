package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// recorded is what the fake player API saw of a request.
type recorded struct {
	method      string
	contentType string
	userAgent   string
	body        map[string]any
}

func playerAPI(response string, seen *recorded) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		seen.method = r.Method
		seen.contentType = r.Header.Get("Content-Type")
		seen.userAgent = r.Header.Get("User-Agent")
		_ = json.Unmarshal(raw, &seen.body)

		_, _ = io.WriteString(w, response)
	}))
}

func clientOf(body map[string]any) map[string]any {
	return body["context"].(map[string]any)["client"].(map[string]any)
}

func TestNegotiatorAttempt(t *testing.T) {
	Convey("Negotiator.Attempt", t, func() {
		ctx := context.Background()

		Convey("With the Primary identity", func() {
			var seen recorded
			server := playerAPI(`{"streamingData": {"hlsManifestUrl": "https://x/manifest.m3u8"}}`, &seen)
			defer server.Close()

			resp, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(ctx, "abc123", Primary)

			Convey("Should decode the manifest URL", func() {
				So(err, ShouldBeNil)
				So(*resp.StreamingData.HLSManifestURL, ShouldEqual, "https://x/manifest.m3u8")
			})

			Convey("Should post JSON with the iOS user agent", func() {
				So(seen.method, ShouldEqual, http.MethodPost)
				So(seen.contentType, ShouldEqual, "application/json")
				So(seen.userAgent, ShouldEqual, Primary.UserAgent())
			})

			Convey("Should send the iOS client context", func() {
				client := clientOf(seen.body)
				So(seen.body["videoId"], ShouldEqual, "abc123")
				So(client["clientName"], ShouldEqual, "IOS")
				So(client["clientVersion"], ShouldEqual, "19.29.1")
				So(client["deviceModel"], ShouldEqual, "iPhone16,2")
				So(client["userAgent"], ShouldEqual, Primary.UserAgent())
				So(client["hl"], ShouldEqual, "en")
				So(seen.body, ShouldNotContainKey, "contentCheckOk")
				So(seen.body, ShouldNotContainKey, "racyCheckOk")
			})
		})

		Convey("With the Fallback identity", func() {
			var seen recorded
			server := playerAPI(`{}`, &seen)
			defer server.Close()

			resp, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(ctx, "abc123", Fallback)

			Convey("Should succeed without streaming data", func() {
				So(err, ShouldBeNil)
				So(resp.HasStreamingData(), ShouldBeFalse)
			})

			Convey("Should send the Android client context and content flags", func() {
				client := clientOf(seen.body)
				So(seen.userAgent, ShouldEqual, Fallback.UserAgent())
				So(client["clientName"], ShouldEqual, "ANDROID")
				So(client["clientVersion"], ShouldEqual, "19.02.39")
				So(client["androidSdkVersion"], ShouldEqual, float64(34))
				So(client["hl"], ShouldEqual, "en")
				So(client, ShouldNotContainKey, "deviceModel")
				So(seen.body["contentCheckOk"], ShouldEqual, true)
				So(seen.body["racyCheckOk"], ShouldEqual, true)
			})
		})

		Convey("Should decode a body that lacks every streaming field", func() {
			var seen recorded
			server := playerAPI(`{"streamingData": {}}`, &seen)
			defer server.Close()

			resp, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(ctx, "abc123", Primary)
			So(err, ShouldBeNil)
			So(resp.StreamingData, ShouldNotBeNil)
			So(resp.StreamingData.Formats, ShouldBeNil)
			So(resp.StreamingData.AdaptiveFormats, ShouldBeNil)
			So(resp.StreamingData.HLSManifestURL, ShouldBeNil)
		})

		Convey("Should decode error documents regardless of status", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error": {"code": 400, "message": "Precondition check failed."}}`)
			}))
			defer server.Close()

			resp, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(ctx, "", Primary)
			So(err, ShouldBeNil)
			So(resp.HasStreamingData(), ShouldBeFalse)
		})

		Convey("Should fail with ErrDecode on a malformed body", func() {
			var seen recorded
			server := playerAPI(`{"streamingData": {"formats": "nope"}}`, &seen)
			defer server.Close()

			_, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(ctx, "abc123", Primary)
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
			So(errors.Is(err, ErrNetwork), ShouldBeFalse)
		})

		Convey("Should fail with ErrDecode on a non-JSON body", func() {
			var seen recorded
			server := playerAPI(`<html>consent</html>`, &seen)
			defer server.Close()

			_, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(ctx, "abc123", Fallback)
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})

		Convey("Should fail with ErrNetwork when the server is gone", func() {
			var seen recorded
			server := playerAPI(`{}`, &seen)
			endpoint := server.URL
			server.Close()

			_, err := NewNegotiator(http.DefaultClient, WithEndpoint(endpoint)).Attempt(ctx, "abc123", Primary)
			So(errors.Is(err, ErrNetwork), ShouldBeTrue)
			So(errors.Is(err, ErrCancelled), ShouldBeFalse)
		})

		Convey("Should fail with ErrCancelled on a cancelled context", func() {
			var seen recorded
			server := playerAPI(`{}`, &seen)
			defer server.Close()

			cancelledCtx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := NewNegotiator(server.Client(), WithEndpoint(server.URL)).Attempt(cancelledCtx, "abc123", Primary)
			So(errors.Is(err, ErrCancelled), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(errors.Is(err, ErrNetwork), ShouldBeFalse)
		})
	})
}

func TestIdentity(t *testing.T) {
	Convey("Identity", t, func() {
		So(Primary.String(), ShouldEqual, "IOS")
		So(Fallback.String(), ShouldEqual, "ANDROID")
		So(Identity(7).String(), ShouldEqual, "Identity(7)")
		So(Fallback.Device(), ShouldEqual, "Android 14")
		So(func() { Identity(7).UserAgent() }, ShouldPanic)
		So(func() { Identity(7).payload("abc123") }, ShouldPanic)
	})
}
