package report

// documentTemplate is the embedded HTML document with inline styling.
// Chart.js is referenced from a pinned CDN build; everything else is
// inlined so the file opens standalone.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
    <style>
        :root {
            --success: #10b981;
            --failure: #ef4444;
            --skipped: #f59e0b;
            --bg: #f8fafc;
            --card: #ffffff;
            --text: #1e293b;
            --muted: #64748b;
            --border: #e2e8f0;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }
        .container { max-width: 1200px; margin: 0 auto; padding: 2rem; }
        header {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 12px;
            padding: 1.5rem 2rem;
            margin-bottom: 2rem;
        }
        header h1 { font-size: 1.6rem; margin-bottom: 0.25rem; }
        header .meta { color: var(--muted); font-size: 0.875rem; }
        .banner { margin-bottom: 2rem; }
        .banner img { width: 100%; border-radius: 12px; display: block; }
        .status { display: inline-block; padding: 0.2rem 0.8rem; border-radius: 999px; color: #fff; font-weight: 600; font-size: 0.8rem; }
        .status.passed { background: var(--success); }
        .status.failed { background: var(--failure); }
        .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 1rem; margin-bottom: 2rem; }
        .card {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 12px;
            padding: 1.25rem;
            text-align: center;
        }
        .card .value { font-size: 2rem; font-weight: 700; }
        .card .label { color: var(--muted); font-size: 0.8rem; text-transform: uppercase; letter-spacing: 0.05em; }
        .card.successful .value { color: var(--success); }
        .card.failed .value { color: var(--failure); }
        .card.skipped .value { color: var(--skipped); }
        section { margin-bottom: 2.5rem; }
        section h2 { font-size: 1.2rem; margin-bottom: 1rem; }
        .charts { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
        .chart-box { background: var(--card); border: 1px solid var(--border); border-radius: 12px; padding: 1.25rem; }
        .chart-box h3 { font-size: 0.95rem; margin-bottom: 0.75rem; color: var(--muted); }
        table { width: 100%; border-collapse: collapse; background: var(--card); border-radius: 12px; overflow: hidden; }
        th, td { text-align: left; padding: 0.6rem 1rem; border-bottom: 1px solid var(--border); font-size: 0.875rem; }
        th { background: var(--bg); color: var(--muted); text-transform: uppercase; font-size: 0.75rem; letter-spacing: 0.05em; }
        .check-status { font-weight: 600; font-size: 0.8rem; }
        .check-status.passed { color: var(--success); }
        .check-status.failed { color: var(--failure); }
        .check-status.skipped { color: var(--skipped); }
        .gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(320px, 1fr)); gap: 1.5rem; }
        .shot { background: var(--card); border: 1px solid var(--border); border-radius: 12px; overflow: hidden; }
        .shot img { width: 100%; display: block; }
        .shot .caption { padding: 0.75rem 1rem; display: flex; justify-content: space-between; font-size: 0.875rem; }
        .shot .caption .time { color: var(--muted); }
        footer { color: var(--muted); font-size: 0.8rem; text-align: center; padding: 1rem 0 2rem; }
        .empty { color: var(--muted); font-style: italic; }
    </style>
</head>
<body>
<div class="container">
    {{if .HasBanner}}
    <div class="banner"><img src="{{.BannerDataURI}}" alt="status banner"></div>
    {{end}}
    <header>
        <h1>{{.Title}} <span class="status {{.StatusClass}}">{{.OverallStatus}}</span></h1>
        <div class="meta">
            {{if .Environment}}Environment: {{.Environment}} &middot; {{end}}
            {{if .RunID}}Run: {{.RunID}} &middot; {{end}}
            {{if .StartedAt}}Started: {{.StartedAt}} &middot; {{end}}
            {{if .Duration}}Duration: {{.Duration}}{{end}}
        </div>
    </header>

    <div class="cards">
        <div class="card"><div class="value">{{.Total}}</div><div class="label">Total</div></div>
        <div class="card successful"><div class="value">{{.Successful}}</div><div class="label">Successful</div></div>
        <div class="card failed"><div class="value">{{.Failed}}</div><div class="label">Failed</div></div>
        <div class="card skipped"><div class="value">{{.Skipped}}</div><div class="label">Skipped</div></div>
        <div class="card"><div class="value">{{.SuccessRate}}</div><div class="label">Success Rate</div></div>
    </div>

    <section>
        <h2>Results</h2>
        <div class="charts">
            <div class="chart-box">
                <h3>Validation Outcomes</h3>
                <canvas id="validationChart"></canvas>
            </div>
            {{if .HasComponentChart}}
            <div class="chart-box">
                <h3>Average Component Load Time (ms)</h3>
                <canvas id="componentChart"></canvas>
            </div>
            {{end}}
        </div>
    </section>

    {{if .HasChecks}}
    <section>
        <h2>Validation Checks</h2>
        <table>
            <thead><tr><th>#</th><th>Check</th><th>Status</th><th>Message</th></tr></thead>
            <tbody>
            {{range .Checks}}
                <tr>
                    <td>{{.Index}}</td>
                    <td>{{.Name}}</td>
                    <td><span class="check-status {{.Class}}">{{.Status}}</span></td>
                    <td>{{.Message}}</td>
                </tr>
            {{end}}
            </tbody>
        </table>
    </section>
    {{end}}

    {{if .HasPerformance}}
    <section>
        <h2>Component Load Times</h2>
        {{if .Components}}
        <table>
            <thead><tr><th>Component</th><th>Min</th><th>Max</th><th>Average</th><th>Samples</th></tr></thead>
            <tbody>
            {{range .Components}}
                <tr><td>{{.Name}}</td><td>{{.Min}}</td><td>{{.Max}}</td><td>{{.Average}}</td><td>{{.Count}}</td></tr>
            {{end}}
            </tbody>
        </table>
        {{else}}
        <p class="empty">No component samples recorded.</p>
        {{end}}
    </section>

    <section>
        <h2>Element Timings</h2>
        {{if .Elements}}
        <table>
            <thead><tr><th>Element</th><th>Min</th><th>Max</th><th>Average</th><th>Samples</th></tr></thead>
            <tbody>
            {{range .Elements}}
                <tr><td>{{.Name}}</td><td>{{.Min}}</td><td>{{.Max}}</td><td>{{.Average}}</td><td>{{.Count}}</td></tr>
            {{end}}
            </tbody>
        </table>
        {{else}}
        <p class="empty">No element timings recorded.</p>
        {{end}}
    </section>

    {{if .Interactions}}
    <section>
        <h2>Interactions</h2>
        <table>
            <thead><tr><th>Interaction</th><th>Started</th><th>Duration</th></tr></thead>
            <tbody>
            {{range .Interactions}}
                <tr><td>{{.Name}}</td><td>{{.Started}}</td><td>{{.Duration}}</td></tr>
            {{end}}
            </tbody>
        </table>
    </section>
    {{end}}
    {{end}}

    {{if .Screenshots}}
    <section>
        <h2>Screenshots</h2>
        <div class="gallery">
        {{range .Screenshots}}
            <div class="shot">
                <img src="{{.DataURI}}" alt="{{.Name}}">
                <div class="caption"><span>{{.Name}}</span><span class="time">{{.CapturedAt}}</span></div>
            </div>
        {{end}}
        </div>
    </section>
    {{end}}

    <footer>Generated at {{.GeneratedAt}}{{if .Project}} for {{.Project}}{{end}}</footer>
</div>

<script>
    new Chart(document.getElementById('validationChart'), {
        type: 'doughnut',
        data: {
            labels: ['Successful', 'Failed', 'Skipped'],
            datasets: [{
                data: {{.ValidationChartJSON}},
                backgroundColor: ['#10b981', '#ef4444', '#f59e0b']
            }]
        },
        options: { plugins: { legend: { position: 'bottom' } } }
    });
    {{if .HasComponentChart}}
    new Chart(document.getElementById('componentChart'), {
        type: 'bar',
        data: {
            labels: {{.ComponentLabelsJSON}},
            datasets: [{
                label: 'Average load time (ms)',
                data: {{.ComponentValuesJSON}},
                backgroundColor: '#3b82f6'
            }]
        },
        options: { plugins: { legend: { display: false } }, scales: { y: { beginAtZero: true } } }
    });
    {{end}}
</script>
</body>
</html>
`
