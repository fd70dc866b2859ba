package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/gogpu/resample/pixbuf"
)

func newInfoCmd() *cobra.Command {
	var showCPU bool
	cmd := &cobra.Command{
		Use:   "info [FILE...]",
		Short: "Describe image files and how they map to pixel buffers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !showCPU {
				return cmd.Usage()
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if showCPU {
				writeCPUInfo(w)
			}
			for _, file := range args {
				if err := writeImageInfo(w, file); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&showCPU, `cpu`, false, `show CPU features and parallelism`)
	return cmd
}

func writeImageInfo(w io.Writer, file string) error {
	img, format, err := decodeFile(file)
	if err != nil {
		return err
	}
	buf, err := pixbuf.FromImage(img)
	if err != nil {
		return err
	}
	defer buf.Release()

	size := img.Bounds().Size()
	fmt.Fprintf(w, "%s\n", file)
	fmt.Fprintf(w, "  format:\t%s\n", format)
	fmt.Fprintf(w, "  size:\t%dx%d\n", size.X, size.Y)
	fmt.Fprintf(w, "  color model:\t%T\n", img.ColorModel())
	fmt.Fprintf(w, "  mode:\t%s\n", buf.Mode())
	fmt.Fprintf(w, "  element type:\t%s\n", buf.ElementType())
	fmt.Fprintf(w, "  channels:\t%d\n", buf.Channels())
	fmt.Fprintf(w, "  pixel size:\t%d bytes\n", buf.PixelSize())
	return nil
}

func writeCPUInfo(w io.Writer) {
	fmt.Fprintf(w, "cpu\n")
	fmt.Fprintf(w, "  arch:\t%s\n", runtime.GOARCH)
	fmt.Fprintf(w, "  GOMAXPROCS:\t%d\n", runtime.GOMAXPROCS(0))
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Fprintf(w, "  sse2:\t%t\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  sse4.1:\t%t\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  avx:\t%t\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  avx2:\t%t\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  avx512f:\t%t\n", cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Fprintf(w, "  asimd:\t%t\n", cpu.ARM64.HasASIMD)
	}
}
