package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidsel/vidsel/filesystem"
)

func init() {
	filesystem.UseMemory()
}

func TestCompare(t *testing.T) {
	Convey("Given pairs of versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.3.0", "0.3.0", 0},
			{"v1.0.0", "0.9.9", 1},
			{"0.2.9", "0.3.0", -1},
			{"0.3.10", "0.3.9", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		Convey("Pre-release suffixes do not count", func() {
			got, err := Compare("v0.4.0-rc.1", "0.3.9")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 1)

			v, err := Parse("1.2.3+build.7")
			So(err, ShouldBeNil)
			So(v.String(), ShouldEqual, "1.2.3")
		})

		Convey("Malformed versions are errors", func() {
			_, err := Parse("1.2")
			So(err, ShouldNotBeNil)

			_, err = Compare("latest", "0.3.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release API", t, func() {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.3"}`))
		}))
		defer server.Close()

		original := releasesURL
		releasesURL = server.URL
		Reset(func() { releasesURL = original })

		Convey("The tag is returned without its prefix and cached", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "1.2.3")

			ver, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "1.2.3")
			So(hits.Load(), ShouldEqual, int32(1))

			Convey("and is reported as ahead of this build", func() {
				latest, ok := Newer(context.Background())
				So(ok, ShouldBeTrue)
				So(latest, ShouldEqual, "1.2.3")
			})
		})
	})
}
