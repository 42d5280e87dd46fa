package jobscrape

// LogoRenderer turns an encoded image into ASCII art for console output.
type LogoRenderer interface {
	Render(image []byte) (string, error)
}
