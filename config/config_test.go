package config_test

import (
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/config"
	"github.com/vidsel/vidsel/filesystem"
	"github.com/vidsel/vidsel/key"
)

func init() {
	filesystem.UseMemory()
}

func TestSetup(t *testing.T) {
	Convey("Given no config file", t, func() {
		So(config.Remove(), ShouldBeNil)
		viper.Reset()

		Convey("Setup succeeds and every default is visible", func() {
			So(config.Setup(), ShouldBeNil)
			for _, k := range config.Keys() {
				So(viper.Get(k), ShouldNotBeNil)
			}
			So(viper.GetInt(key.ResolveParallel), ShouldEqual, 4)
			So(viper.GetString(key.Player), ShouldEqual, "mpv")
		})

		Convey("Environment variables override defaults", func() {
			So(os.Setenv("VIDSEL_NETWORK_TIMEOUT", "5"), ShouldBeNil)
			defer os.Unsetenv("VIDSEL_NETWORK_TIMEOUT")

			So(config.Setup(), ShouldBeNil)
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 5)
		})

		Convey("A saved value survives the next Setup", func() {
			So(config.Setup(), ShouldBeNil)
			v, err := config.Set(key.Player, " iina ")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "iina")

			viper.Reset()
			So(config.Setup(), ShouldBeNil)
			So(viper.GetString(key.Player), ShouldEqual, "iina")

			Convey("and Reset brings the default back", func() {
				_, err := config.Reset(key.Player)
				So(err, ShouldBeNil)
				So(viper.GetString(key.Player), ShouldEqual, "mpv")
			})
		})

		Convey("Write keeps an existing file unless forced", func() {
			So(config.Setup(), ShouldBeNil)
			So(config.Write(false), ShouldBeNil)
			So(errors.Is(config.Write(false), config.ErrExists), ShouldBeTrue)
			So(config.Write(true), ShouldBeNil)
		})

		Convey("Removing a missing file is fine", func() {
			So(config.Remove(), ShouldBeNil)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a declared field", t, func() {
		field, err := config.Lookup(key.NetworkTLSFingerprint)
		So(err, ShouldBeNil)

		Convey("It derives its environment variable", func() {
			So(field.Env(), ShouldEqual, "VIDSEL_NETWORK_TLS_FINGERPRINT")
		})

		Convey("It parses values of its own type only", func() {
			v, err := field.Parse("TRUE")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = field.Parse("sometimes")
			So(err, ShouldNotBeNil)

			parallel, _ := config.Lookup(key.ResolveParallel)
			So(parallel.Type(), ShouldEqual, "int")
			_, err = parallel.Parse("four")
			So(err, ShouldNotBeNil)
		})

		Convey("It marshals with its default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"default":false`)
			So(string(data), ShouldContainSubstring, `"key":"network.tls_fingerprint"`)
		})

		Convey("It renders every attribute", func() {
			So(field.Pretty(), ShouldContainSubstring, "VIDSEL_NETWORK_TLS_FINGERPRINT")
		})
	})

	Convey("Unknown keys suggest the closest declared one", t, func() {
		_, err := config.Lookup("resolve.paralel")
		var unknown *config.UnknownKeyError
		So(errors.As(err, &unknown), ShouldBeTrue)
		So(unknown.Closest, ShouldEqual, key.ResolveParallel)

		_, err = config.Set("player.defualt", "mpv")
		So(errors.As(err, &unknown), ShouldBeTrue)
	})
}
