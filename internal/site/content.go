package site

var (
	AboutMe = `I build small, sharp tools and the occasional over-engineered side
	project. Most of what I ship starts as a weekend experiment that refused to
	stay one, whether that's a rendering toy, a deploy script that grew opinions,
	or yet another take on a personal site.
	Away from the keyboard I'm usually climbing, tinkering with synths, or
	planning a bike trip I'll probably overpack for.`

	ProjectOne = `An animated particle-mesh hero background: a few dozen drifting
	points linked by fading lines, simulated in Go and rendered at the display
	refresh rate, with the same engine previewable in a native window.`

	ProjectTwo = `A one-command publishing pipeline that mirrors the site into a
	build directory, syncs it to object storage with per-file-type cache
	metadata, and invalidates the CDN so deploys go live immediately.`

	ProjectThree = `A terminal dashboard for home-lab metrics built in Go,
	aggregating node exporters over SSH and rendering sparkline histories
	without a browser in sight.`

	ProjectFour = `This site: a Go and Gin portfolio with HTMX-style partial
	updates, a validated contact form delivered over SMTP, and zero client-side
	framework code.`
)
