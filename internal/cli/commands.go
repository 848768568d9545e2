package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ducktyper/internal/fsops"
	"ducktyper/internal/services/filesystem"
)

// cat command variables
var (
	catEncoding string
)

// write command variables
var (
	writeEncoding string
	writeDirect   bool
	writeChecksum bool
)

// list command variables
var (
	listPattern string
	listHidden  bool
)

// find command variables
var (
	findShallow bool
	findHidden  bool
)

// checksum command variables
var checksumAlgorithm string

// search command variables
var (
	searchPattern string
	searchHidden  bool
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print the contents of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

var writeCmd = &cobra.Command{
	Use:   "write <path> <content>",
	Short: "Write content to a file, creating parent directories",
	Args:  cobra.ExactArgs(2),
	RunE:  runWrite,
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show a metadata snapshot of a path",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var findCmd = &cobra.Command{
	Use:   "find <root> <pattern>",
	Short: "Find files and directories by name pattern",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

var checksumCmd = &cobra.Command{
	Use:   "checksum <path>",
	Short: "Compute a file checksum",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecksum,
}

var searchCmd = &cobra.Command{
	Use:   "search <root> <text>",
	Short: "Find files whose content contains text",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

var duCmd = &cobra.Command{
	Use:   "du [path]",
	Short: "Show disk usage of the filesystem containing a path",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDiskUsage,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ducktyper version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  built by: %s\n", builtBy)
	},
}

// InitCommands initializes all commands and adds them to root
func InitCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(checksumCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(duCmd)
	rootCmd.AddCommand(versionCmd)

	catCmd.Flags().StringVarP(&catEncoding, "encoding", "e", "utf-8", "text encoding")

	writeCmd.Flags().StringVarP(&writeEncoding, "encoding", "e", "utf-8", "text encoding")
	writeCmd.Flags().BoolVar(&writeDirect, "direct", false, "write in place instead of atomically")
	writeCmd.Flags().BoolVar(&writeChecksum, "checksum", false, "record a checksum of the written file")

	listCmd.Flags().StringVarP(&listPattern, "pattern", "p", "", "glob filter on entry names")
	listCmd.Flags().BoolVar(&listHidden, "hidden", false, "include hidden entries")

	findCmd.Flags().BoolVar(&findShallow, "shallow", false, "search only the top level")
	findCmd.Flags().BoolVar(&findHidden, "hidden", false, "include hidden entries")

	checksumCmd.Flags().StringVarP(&checksumAlgorithm, "algorithm", "a", "", "digest algorithm (default from config)")

	searchCmd.Flags().StringVarP(&searchPattern, "pattern", "p", "*", "glob filter on file names")
	searchCmd.Flags().BoolVar(&searchHidden, "hidden", false, "include hidden files")
}

func runCat(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	res := a.FS.ReadText(fsops.Path(args[0]), fsops.Encoding(catEncoding))
	if res.Failed() {
		return res.Err
	}
	fmt.Print(res.Content)
	if !strings.HasSuffix(res.Content, "\n") {
		fmt.Println()
	}
	return nil
}

func runWrite(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := fsops.DefaultWriteOptions()
	opts.Encoding = fsops.Encoding(writeEncoding)
	opts.Atomic = !writeDirect
	opts.Checksum = writeChecksum

	res := a.FS.WriteText(fsops.Path(args[0]), args[1], opts)
	if res.Failed() {
		return res.Err
	}
	fmt.Printf("Wrote %d bytes to %s\n", res.BytesWritten, res.Path)
	if res.Checksum != "" {
		fmt.Printf("  sha256: %s\n", res.Checksum)
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	res := a.FS.GetFileInfo(fsops.Path(args[0]))
	if res.Failed() {
		return res.Err
	}
	if !res.Exists {
		fmt.Printf("%s: does not exist\n", res.Path)
		return nil
	}

	fmt.Printf("%s\n", res.Path)
	fmt.Printf("  type: %s\n", a.FS.GetFileType(res.Path))
	fmt.Printf("  size: %s\n", a.FS.FileSizeString(res.Size))
	fmt.Printf("  permissions: %s\n", res.Permissions)
	fmt.Printf("  modified: %s\n", res.Modified.Format("2006-01-02 15:04:05"))
	if res.Owner != "" {
		fmt.Printf("  owner: %s\n", res.Owner)
	}
	if res.MimeType != "" {
		fmt.Printf("  mime: %s\n", res.MimeType)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	res := a.FS.ListDirectory(fsops.Path(path), fsops.ListOptions{
		Pattern:       listPattern,
		IncludeHidden: listHidden,
	})
	if res.Failed() {
		return res.Err
	}

	for _, dir := range res.Directories {
		fmt.Printf("%s/\n", dir)
	}
	for _, file := range res.Files {
		fmt.Println(file)
	}
	fmt.Printf("%d files, %d directories, %s total\n",
		res.TotalFiles, res.TotalDirectories, a.FS.FileSizeString(res.TotalSize))
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := fsops.DefaultFindOptions()
	opts.Recursive = !findShallow
	opts.IncludeHidden = findHidden

	res := a.FS.FindFiles(fsops.Path(args[0]), args[1], opts)
	if res.Failed() {
		return res.Err
	}

	for _, dir := range res.Directories {
		fmt.Printf("%s/\n", dir)
	}
	for _, file := range res.Files {
		fmt.Println(file)
	}
	fmt.Printf("%d matches\n", res.TotalMatches)
	return nil
}

func runChecksum(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	algorithm := checksumAlgorithm
	if algorithm == "" {
		algorithm = a.Config.ChecksumAlgorithm
	}

	res := a.FS.Checksum(fsops.Path(args[0]), algorithm)
	if res.Failed() {
		return res.Err
	}
	fmt.Printf("%s  %s\n", res.Checksum, res.Path)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	opts := filesystem.DefaultContentSearchOptions()
	opts.Pattern = searchPattern
	opts.IncludeHidden = searchHidden
	opts.FilesPerSecond = a.Config.ScanFilesPerSecond

	matches, err := a.FS.FindFilesByContent(context.Background(), fsops.Path(args[0]), args[1], opts)
	if err != nil {
		return err
	}
	for _, match := range matches {
		fmt.Println(match)
	}
	fmt.Printf("%d files contain %q\n", len(matches), args[1])
	return nil
}

func runDiskUsage(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	path := a.FS.BaseDir()
	if len(args) > 0 {
		path = a.FS.ResolvePath(fsops.Path(args[0]))
	}

	usage, err := a.FS.GetDiskUsage(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", path)
	fmt.Printf("  total: %s\n", a.FS.FileSizeString(int64(usage.Total)))
	fmt.Printf("  used: %s\n", a.FS.FileSizeString(int64(usage.Used)))
	fmt.Printf("  available: %s\n", a.FS.FileSizeString(int64(usage.Available)))
	return nil
}
