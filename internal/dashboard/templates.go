package dashboard

import "html/template"

// pages holds every dashboard template. Styling is deliberately minimal;
// the charts carry their own rendering assets.
var pages = template.Must(template.New("dashboard").Parse(`
{{define "head"}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>StreamGit - {{.Title}}</title>
<style>
body { font-family: "Source Sans Pro", sans-serif; margin: 0; background: #fafafa; color: #333; }
nav { background: #24292e; padding: 12px 24px; }
nav a { color: #fff; margin-right: 16px; text-decoration: none; }
nav a:hover { text-decoration: underline; }
main { padding: 24px; max-width: 1100px; margin: 0 auto; }
table { border-collapse: collapse; width: 100%; background: #fff; }
th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; font-size: 14px; }
th { background: #f0f0f0; }
tr.owned { background: rgba(33, 150, 243, 0.08); }
.cards { display: flex; flex-wrap: wrap; gap: 16px; }
.card { background: #fff; border-radius: 10px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); padding: 20px; min-width: 180px; text-align: center; }
.card h2 { margin: 8px 0 0; font-size: 32px; }
.card p { margin: 0; font-weight: bold; }
.warn { color: #b71c1c; }
iframe { border: none; width: 100%; height: 480px; background: #fff; }
form label { display: block; margin: 10px 0 4px; font-weight: bold; }
form input[type=text] { width: 320px; padding: 6px; }
button { margin-top: 14px; padding: 8px 18px; }
.user { float: right; color: #ccc; }
</style>
</head>
<body>
<nav>
<a href="/stats">Stats</a>
<a href="/activity">Activity</a>
<a href="/data">Data</a>
<a href="/visualize">Visualize</a>
<a href="/stars">Stars</a>
<a href="/create">Create</a>
<a href="/delete">Delete</a>
<span class="user">{{.Login}}</span>
</nav>
<main>
<h1>{{.Title}}</h1>
{{end}}

{{define "foot"}}
</main>
</body>
</html>
{{end}}

{{define "stats"}}
{{template "head" .}}
<p>Successfully authenticated as GitHub user: <strong>{{.Login}}</strong>.</p>
<p>Found a total of <strong>{{.Stats.Total}}</strong> repositories, of which
<strong>{{.Stats.Owned}}</strong> are owned by {{.Login}}. This includes
<strong>{{.Stats.Public}}</strong> public and <strong>{{.Stats.Private}}</strong> private
repositories, <strong>{{.Stats.Forked}}</strong> forks and
<strong>{{.Stats.Archived}}</strong> archived repositories.</p>
<div class="cards">
{{range .Metrics}}<div class="card"><p>{{.Label}}</p><h2>{{.Value}}</h2></div>{{end}}
</div>
{{template "foot" .}}
{{end}}

{{define "activity"}}
{{template "head" .}}
<p>Showing the {{len .Repos}} most recently updated repositories.</p>
<ol>
{{range .Repos}}<li><strong>{{.Name}}</strong> - last updated {{.UpdatedAt.Format "Jan 02, 2006 03:04 PM"}}</li>{{end}}
</ol>
<p>Filtering commits by <strong>{{.Login}}</strong> (username) and <strong>{{.Name}}</strong> (full name):
you have made <strong>{{.Mine.Commits}}</strong> commits across <strong>{{.Mine.Repos}}</strong>
repositories; there are <strong>{{.Others.Commits}}</strong> commits by other authors across
<strong>{{.Others.Repos}}</strong> repositories.</p>
{{if not .Commits}}<p class="warn">No commits found in any of the recent repositories.</p>{{end}}
<table>
<tr><th>Repository</th><th>Message</th><th>Date</th><th>Author</th></tr>
{{range .Commits}}<tr><td>{{.Repo}}</td><td><a href="{{.URL}}">{{.Message}}</a></td><td>{{.Date.Format "Jan 02, 2006 03:04 PM"}}</td><td>{{.Author}}</td></tr>{{end}}
</table>
<p><a href="/commits.csv">Download commits CSV</a></p>
{{template "foot" .}}
{{end}}

{{define "data"}}
{{template "head" .}}
<p>You own <strong>{{.OwnedCount}}</strong> repositories and have access to
<strong>{{.OtherCount}}</strong> repositories owned by others.
<a href="/data.csv">Download CSV</a></p>
<table>
<tr><th>Name</th><th>Owner</th><th>Language</th><th>Stars</th><th>Forks</th><th>Fork</th><th>Archived</th><th>Private</th><th>Created</th><th>Updated</th></tr>
{{range .Records}}<tr{{if .IsOwner}} class="owned"{{end}}><td><a href="{{.URL}}">{{.Name}}</a></td><td>{{.Owner}}</td><td>{{.Language}}</td><td>{{.Stars}}</td><td>{{.Forks}}</td><td>{{.IsFork}}</td><td>{{.IsArchived}}</td><td>{{.IsPrivate}}</td><td>{{.CreatedAt.Format "2006-01-02"}}</td><td>{{.UpdatedAt.Format "2006-01-02"}}</td></tr>{{end}}
</table>
{{template "foot" .}}
{{end}}

{{define "visualize"}}
{{template "head" .}}
{{range .Kinds}}
<h2>{{.}}</h2>
<iframe src="/charts/{{.}}"></iframe>
{{end}}
{{template "foot" .}}
{{end}}

{{define "stars"}}
{{template "head" .}}
<p>Total starred repositories: <strong>{{.Summary.Total}}</strong>
(mean {{printf "%.1f" .Summary.MeanStars}} / median {{printf "%.1f" .Summary.MedianStars}} stars).
<a href="/stars.csv">Download CSV</a></p>
<table>
<tr><th>Name</th><th>Owner</th><th>Language</th><th>Stars</th><th>Forks</th><th>Description</th></tr>
{{range .Starred}}<tr><td><a href="{{.URL}}">{{.Name}}</a></td><td>{{.Owner}}</td><td>{{.Language}}</td><td>{{.Stars}}</td><td>{{.Forks}}</td><td>{{.Description}}</td></tr>{{end}}
</table>
<h2>Language Breakdown</h2>
<iframe src="/charts/starred_languages"></iframe>
<h2>Most Starred</h2>
<iframe src="/charts/top_starred"></iframe>
{{template "foot" .}}
{{end}}

{{define "create"}}
{{template "head" .}}
{{if .Message}}<p><strong>{{.Message}}</strong></p>{{end}}
{{if .Error}}<p class="warn">{{.Error}}</p>{{end}}
<form method="POST" action="/repos">
<label>Repository Name</label><input type="text" name="name">
<label>Description</label><input type="text" name="description">
<label><input type="checkbox" name="private" value="true"> Private Repository</label>
<label><input type="checkbox" name="auto_init" value="true"> Initialize with README</label>
<label>Gitignore Template</label><input type="text" name="gitignore_template">
<label>License Template</label><input type="text" name="license_template">
<button type="submit">Create Repository</button>
</form>
{{template "foot" .}}
{{end}}

{{define "delete"}}
{{template "head" .}}
{{if .Message}}<p><strong>{{.Message}}</strong></p>{{end}}
{{if .Error}}<p class="warn">{{.Error}}</p>{{end}}
<p class="warn">This action cannot be undone. Type the repository name to confirm.</p>
<form method="POST" action="/repos/delete">
<label>Repository to delete (admin access only)</label>
<select name="name">
{{range .Deletable}}<option value="{{.Name}}">{{.Name}}</option>{{end}}
</select>
<label>Type the repository name to confirm deletion</label>
<input type="text" name="confirmation">
<button type="submit">Delete Repository</button>
</form>
{{template "foot" .}}
{{end}}
`))
