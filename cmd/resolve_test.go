package cmd

import (
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidsel/vidsel/filesystem"
)

func init() {
	filesystem.UseMemory()
}

func TestWriteOutput(t *testing.T) {
	Convey("Given an output path", t, func() {
		path := "/out/result.txt"

		Convey("A failed run still leaves the file closed with what was written", func() {
			failure := errors.New("2 of 3 videos could not be resolved")

			var kept io.Writer
			err := writeOutput(path, func(w io.Writer) error {
				kept = w
				_, _ = io.WriteString(w, "https://example.com/stream.m3u8\n")
				return failure
			})

			So(errors.Is(err, failure), ShouldBeTrue)

			_, err = io.WriteString(kept, "late")
			So(err, ShouldNotBeNil)

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "https://example.com/stream.m3u8\n")
		})

		Convey("A successful run writes the file", func() {
			So(writeOutput(path, func(w io.Writer) error {
				_, err := io.WriteString(w, "ok")
				return err
			}), ShouldBeNil)

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "ok")
		})
	})

	Convey("Without a path the run writes to stdout", t, func() {
		called := false
		So(writeOutput("", func(w io.Writer) error {
			called = w != nil
			return nil
		}), ShouldBeNil)
		So(called, ShouldBeTrue)
	})
}

func TestMissingPlayer(t *testing.T) {
	Convey("A missing player names the binary and how to install it", t, func() {
		So(missingPlayer("mpv", "darwin"), ShouldContainSubstring, "brew install mpv")
		So(missingPlayer("mpv", "plan9"), ShouldNotContainSubstring, "Install it with")
	})
}
