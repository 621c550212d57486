// pathtracer renders the built-in scenes with a progressive Monte-Carlo path tracer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lumenpath/pathtracer/pkg/core"
	"github.com/lumenpath/pathtracer/pkg/integrator"
	"github.com/lumenpath/pathtracer/pkg/loaders"
	"github.com/lumenpath/pathtracer/pkg/publish"
	"github.com/lumenpath/pathtracer/pkg/renderer"
	"github.com/lumenpath/pathtracer/pkg/scene"
)

// envPrefix namespaces the environment variables that seed flag defaults
const envPrefix = "PATHTRACER_"

var cmdRoot = &cobra.Command{
	Use:          "pathtracer",
	Short:        "Progressive Monte-Carlo path tracer",
	SilenceUsage: true,
}

// renderOptions holds the render command's flags
type renderOptions struct {
	sceneName   string
	width       int
	height      int
	samples     int
	passes      int
	maxDepth    int
	workers     int
	concurrency int
	seed        int64
	outputDir   string
	format      string
	thumbnail   uint
	meshPath    string
	simplify    float64
	texturePath string
	upload      bool
	quiet       bool
	s3          publish.S3Config
}

var renderOpts renderOptions

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var logger core.Logger = core.NewGlogLogger()
		if renderOpts.quiet {
			logger = core.NewVerboseGlogLogger(1)
		}

		path, err := renderScene(ctx, renderOpts, logger)
		if err != nil {
			return err
		}
		fmt.Printf("Render saved as %s\n", path)
		return nil
	},
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range scene.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", info.Name, info.Description)
		}
		return nil
	},
}

func init() {
	// A missing .env is normal; it only seeds flag defaults
	_ = godotenv.Load()

	// Zero-valued size flags fall back to the scene's settings
	flags := cmdRender.Flags()
	flags.StringVar(&renderOpts.sceneName, "scene", envString("SCENE", "default"), "Scene to render (see 'pathtracer scenes')")
	flags.IntVar(&renderOpts.width, "width", envInt("WIDTH", 0), "Image width (0 uses the scene's)")
	flags.IntVar(&renderOpts.height, "height", envInt("HEIGHT", 0), "Image height (0 uses the scene's)")
	flags.IntVar(&renderOpts.samples, "spp", envInt("SPP", 0), "Samples per pixel (0 uses the scene's)")
	flags.IntVar(&renderOpts.passes, "passes", envInt("PASSES", 4), "Progressive passes")
	flags.IntVar(&renderOpts.maxDepth, "max-depth", envInt("MAX_DEPTH", 0), "Maximum bounces (0 uses the scene's)")
	flags.IntVar(&renderOpts.workers, "workers", envInt("WORKERS", 0), "Scanline bands (0 uses the CPU count)")
	flags.IntVar(&renderOpts.concurrency, "concurrency", envInt("CONCURRENCY", 0), "Bands rendered at once (0 uses the CPU count)")
	flags.Int64Var(&renderOpts.seed, "seed", int64(envInt("SEED", 42)), "Base random seed")
	flags.StringVar(&renderOpts.outputDir, "output", envString("OUTPUT", "output"), "Output directory")
	flags.StringVar(&renderOpts.format, "format", envString("FORMAT", "png"), "Image format extension: png, jpg, bmp, gif or tif")
	flags.UintVar(&renderOpts.thumbnail, "thumbnail", uint(envInt("THUMBNAIL", 0)), "Also write a thumbnail no larger than this (0 disables)")
	flags.StringVar(&renderOpts.meshPath, "mesh", envString("MESH", ""), "STL file for the mesh scene")
	flags.Float64Var(&renderOpts.simplify, "simplify", envFloat("SIMPLIFY", 0), "Fraction of mesh faces to keep (0 keeps all)")
	flags.StringVar(&renderOpts.texturePath, "texture", envString("TEXTURE", ""), "Image texture for the spheres and textures scenes")
	flags.BoolVar(&renderOpts.upload, "upload", envBool("UPLOAD", false), "Upload the render to S3 (needs PATHTRACER_S3_BUCKET)")

	flags.BoolVar(&renderOpts.quiet, "quiet", envBool("QUIET", false), "Only log render progress at -v=1 or higher")

	renderOpts.s3 = loadS3Config()
}

// loadS3Config reads the upload settings from the environment
func loadS3Config() publish.S3Config {
	return publish.S3Config{
		AccessKey: envString("S3_ACCESS_KEY", ""),
		SecretKey: envString("S3_SECRET_KEY", ""),
		Endpoint:  envString("S3_ENDPOINT", ""),
		Region:    envString("S3_REGION", "us-east-1"),
		Bucket:    envString("S3_BUCKET", ""),
		Prefix:    envString("S3_PREFIX", ""),
	}
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(envPrefix + key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(envString(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(envString(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}

func envBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(envString(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

// createScene builds the named scene with the command's mesh and texture inputs
func createScene(opts renderOptions) (*scene.Scene, error) {
	return scene.New(opts.sceneName, scene.Options{
		MeshPath:    opts.meshPath,
		Mesh:        loaders.MeshOptions{Simplify: opts.simplify},
		TexturePath: opts.texturePath,
		Seed:        opts.seed,
	})
}

// renderScene renders one scene, writes it under the output directory and returns the image path
func renderScene(ctx context.Context, opts renderOptions, logger core.Logger) (string, error) {
	s, err := createScene(opts)
	if err != nil {
		return "", err
	}

	config := renderer.Config{
		Width:           pick(opts.width, s.SamplingConfig.Width),
		Height:          pick(opts.height, s.SamplingConfig.Height),
		SamplesPerPixel: pick(opts.samples, s.SamplingConfig.SamplesPerPixel),
		Passes:          opts.passes,
		NumWorkers:      opts.workers,
		MaxConcurrency:  opts.concurrency,
		Seed:            opts.seed,
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = pick(opts.maxDepth, s.SamplingConfig.MaxDepth)

	// A changed aspect ratio needs a camera to match
	camera := s.Camera
	if config.Width*s.SamplingConfig.Height != config.Height*s.SamplingConfig.Width {
		cameraConfig := s.CameraConfig
		cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
		camera = renderer.NewCamera(cameraConfig)
	}

	world, err := s.Build(logger)
	if err != nil {
		return "", err
	}

	r, err := renderer.NewRenderer(world, camera, integrator.NewPathTracer(integratorConfig), config, logger)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}

	stats, err := r.Render(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", opts.sceneName, err)
	}
	logger.Printf("Samples per pixel: %.1f (range %d - %d), mean luminance %.3f\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed, stats.MeanLuminance)

	img := r.Image()
	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("render_%s.%s", timestamp, opts.format)
	path := filepath.Join(opts.outputDir, opts.sceneName, name)
	if err := publish.SaveImage(img, path); err != nil {
		return "", err
	}

	if opts.thumbnail > 0 {
		if err := publish.SaveImage(publish.Thumbnail(img, opts.thumbnail), publish.ThumbnailPath(path)); err != nil {
			return "", err
		}
	}

	if opts.upload {
		uploader, err := publish.NewUploader(opts.s3, logger)
		if err != nil {
			return "", err
		}
		if _, err := uploader.UploadImage(ctx, img, opts.sceneName+"/"+name); err != nil {
			return "", err
		}
	}

	return path, nil
}

// pick returns override when set, otherwise the scene's value
func pick(override, sceneValue int) int {
	if override > 0 {
		return override
	}
	return sceneValue
}

func main() {
	glog.CopyStandardLogTo("INFO")
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	// glog checks that the standard flag set was parsed
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	cmdRoot.AddCommand(cmdRender, cmdScenes)
	if err := cmdRoot.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
