package demoserver

// PageDefinition is a static page served by the demo server.
type PageDefinition struct {
	Path        string
	Description string
	HTML        string
	ContentType string
	Status      int
	Headers     map[string]string
}

// GetAllPages returns all demo page definitions.
func GetAllPages() []PageDefinition {
	return []PageDefinition{
		getHomePage(),
		getGoGuardianPage(),
		getSecurlyPage(),
		getGenericBlockPage(),
		getDenyPage(),
		getFinalPage(),
	}
}

func getHomePage() PageDefinition {
	return PageDefinition{
		Path:        "/",
		Description: "Clean page with no filter fingerprints",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Demo Site</title></head>
<body>
    <h1>Welcome</h1>
    <nav>
        <a href="/blocked/goguardian">GoGuardian block page</a> |
        <a href="/blocked/securly">Securly block page</a> |
        <a href="/blocked/generic">Generic block page</a> |
        <a href="/deny">403 deny</a> |
        <a href="/redirect/chain">Redirect chain</a> |
        <a href="/redirect/loop">Redirect loop</a> |
        <a href="/noct">Ambiguous HEAD</a> |
        <a href="/slow">Slow endpoint</a>
    </nav>
    <p>An ordinary page. Nothing is blocked here.</p>
</body>
</html>`,
		ContentType: "text/html",
	}
}

func getGoGuardianPage() PageDefinition {
	return PageDefinition{
		Path:        "/blocked/goguardian",
		Description: "Simulated GoGuardian block page",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Website Blocked</title></head>
<body>
    <div class="gg-block">
        <img src="/static/gg-logo.svg" alt="GoGuardian">
        <h1>This website is blocked by GoGuardian</h1>
        <p>Your administrator has restricted access to this category.</p>
    </div>
</body>
</html>`,
		ContentType: "text/html",
		Status:      403,
	}
}

func getSecurlyPage() PageDefinition {
	return PageDefinition{
		Path:        "/blocked/securly",
		Description: "Simulated Securly block page",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Blocked</title></head>
<body>
    <h1>This site is blocked</h1>
    <p>Securly has flagged this site under the policy set by your school.</p>
</body>
</html>`,
		ContentType: "text/html",
		Status:      403,
		Headers:     map[string]string{"Server": "securly-filter"},
	}
}

func getGenericBlockPage() PageDefinition {
	return PageDefinition{
		Path:        "/blocked/generic",
		Description: "Block page without a vendor name",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Restricted</title></head>
<body>
    <h1>Access to this site is blocked</h1>
    <p>Contact your network administrator if you believe this is an error.</p>
</body>
</html>`,
		ContentType: "text/html",
		Status:      403,
	}
}

func getDenyPage() PageDefinition {
	return PageDefinition{
		Path:        "/deny",
		Description: "Plain 403 without any fingerprint text",
		HTML:        `<html><body><h1>Forbidden</h1></body></html>`,
		ContentType: "text/html",
		Status:      403,
	}
}

func getFinalPage() PageDefinition {
	return PageDefinition{
		Path:        "/final",
		Description: "Redirect chain landing page",
		HTML:        `<html><body><p>You made it to the end of the chain.</p></body></html>`,
		ContentType: "text/html",
	}
}
