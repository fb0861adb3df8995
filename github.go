package hookflow

// Built-in GitHub webhook catalog: record shapes for the payload objects the
// platform nests into events, and the event table mapping every delivered
// wire name to its envelope shape. Field lists follow the documented webhook
// payloads; keys GitHub adds later are retained in each record's unknown bag
// rather than modeled eagerly.

func str(name string) Field  { return Field{Name: name, Kind: KindString} }
func num(name string) Field  { return Field{Name: name, Kind: KindNumber} }
func flag(name string) Field { return Field{Name: name, Kind: KindBool} }
func raw(name string) Field  { return Field{Name: name, Kind: KindMap} }
func loose(name string) Field {
	return Field{Name: name, Kind: KindAny}
}

func obj(name string, of *Shape) Field {
	return Field{Name: name, Kind: KindObject, Of: of}
}

func list(name string, of *Shape) Field {
	return Field{Name: name, Kind: KindList, Of: of}
}

func req(f Field) Field {
	f.Required = true
	return f
}

var userShape = &Shape{
	Name: "user",
	Fields: []Field{
		req(str("login")),
		req(num("id")),
		str("node_id"),
		str("name"),
		str("email"),
		str("avatar_url"),
		str("gravatar_id"),
		str("url"),
		str("html_url"),
		str("followers_url"),
		str("following_url"),
		str("gists_url"),
		str("starred_url"),
		str("subscriptions_url"),
		str("organizations_url"),
		str("repos_url"),
		str("events_url"),
		str("received_events_url"),
		str("type"),
		flag("site_admin"),
	},
}

var enterpriseShape = &Shape{
	Name: "enterprise",
	Fields: []Field{
		req(num("id")),
		str("slug"),
		str("name"),
		str("node_id"),
		str("avatar_url"),
		str("description"),
		str("website_url"),
		str("html_url"),
		str("created_at"),
		str("updated_at"),
	},
}

var organizationShape = &Shape{
	Name: "organization",
	Fields: []Field{
		req(str("login")),
		req(num("id")),
		str("node_id"),
		str("url"),
		str("repos_url"),
		str("events_url"),
		str("hooks_url"),
		str("issues_url"),
		str("members_url"),
		str("public_members_url"),
		str("avatar_url"),
		str("description"),
	},
}

var shortRepositoryShape = &Shape{
	Name: "short_repository",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		req(str("name")),
		str("full_name"),
		flag("private"),
	},
}

var repositoryShape = &Shape{
	Name: "repository",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		req(str("name")),
		req(str("full_name")),
		flag("private"),
		obj("owner", userShape),
		str("html_url"),
		str("description"),
		flag("fork"),
		str("url"),
		str("forks_url"),
		str("teams_url"),
		str("hooks_url"),
		str("events_url"),
		str("tags_url"),
		str("languages_url"),
		str("stargazers_url"),
		str("contributors_url"),
		str("subscribers_url"),
		str("subscription_url"),
		str("merges_url"),
		str("downloads_url"),
		str("deployments_url"),
		str("git_url"),
		str("ssh_url"),
		str("clone_url"),
		str("svn_url"),
		str("homepage"),
		str("language"),
		str("mirror_url"),
		str("license"),
		str("visibility"),
		str("default_branch"),
		str("master_branch"),
		num("size"),
		num("stargazers_count"),
		num("watchers_count"),
		num("forks_count"),
		num("open_issues_count"),
		num("forks"),
		num("open_issues"),
		num("watchers"),
		num("stargazers"),
		flag("has_issues"),
		flag("has_projects"),
		flag("has_downloads"),
		flag("has_wiki"),
		flag("has_pages"),
		flag("archived"),
		flag("disabled"),
		flag("public"),
		flag("is_template"),
		flag("allow_forking"),
		flag("web_commit_signoff_required"),
		loose("topics"),
		obj("permissions", permissionsShape),
		loose("created_at"),
		loose("pushed_at"),
		str("updated_at"),
	},
}

var permissionsShape = &Shape{
	Name: "permissions",
	Fields: []Field{
		str("pull"),
		str("push"),
		str("admin"),
		str("metadata"),
		str("contents"),
		str("issues"),
		str("statuses"),
		str("checks"),
		str("deployments"),
		str("pages"),
		str("members"),
		str("administration"),
		str("pull_requests"),
		str("repository_hooks"),
		str("repository_projects"),
		str("vulnerability_alerts"),
		str("organization_administration"),
		str("organization_hooks"),
		str("organization_plan"),
		str("organization_projects"),
		str("organization_user_blocking"),
		str("team_discussions"),
	},
}

var installationShape = &Shape{
	Name: "installation",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		obj("account", userShape),
		str("repository_selection"),
		str("access_tokens_url"),
		str("repositories_url"),
		str("html_url"),
		num("app_id"),
		num("target_id"),
		str("target_type"),
		obj("permissions", permissionsShape),
		loose("events"),
		loose("created_at"),
		loose("updated_at"),
		str("single_file_name"),
	},
}

var commitUserShape = &Shape{
	Name: "commit_user",
	Fields: []Field{
		req(str("name")),
		str("email"),
		str("username"),
	},
}

var commitShape = &Shape{
	Name: "commit",
	Fields: []Field{
		req(str("id")),
		str("tree_id"),
		flag("distinct"),
		str("message"),
		str("url"),
		str("timestamp"),
		obj("author", commitUserShape),
		obj("committer", commitUserShape),
		loose("added"),
		loose("removed"),
		loose("modified"),
	},
}

var labelShape = &Shape{
	Name: "label",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		req(str("name")),
		str("color"),
		str("description"),
		flag("default"),
	},
}

var milestoneShape = &Shape{
	Name: "milestone",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("html_url"),
		str("labels_url"),
		req(num("number")),
		str("title"),
		str("description"),
		obj("creator", userShape),
		num("open_issues"),
		num("closed_issues"),
		str("state"),
		str("created_at"),
		str("updated_at"),
		str("due_on"),
		str("closed_at"),
	},
}

var issueShape = &Shape{
	Name: "issue",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("repository_url"),
		str("labels_url"),
		str("comments_url"),
		str("events_url"),
		str("html_url"),
		req(num("number")),
		str("title"),
		obj("user", userShape),
		list("labels", labelShape),
		str("state"),
		flag("locked"),
		obj("assignee", userShape),
		list("assignees", userShape),
		obj("milestone", milestoneShape),
		num("comments"),
		str("created_at"),
		str("updated_at"),
		str("closed_at"),
		str("author_association"),
		str("body"),
	},
}

var commentShape = &Shape{
	Name: "comment",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("html_url"),
		str("issue_url"),
		str("pull_request_url"),
		num("pull_request_review_id"),
		str("diff_hunk"),
		str("path"),
		num("position"),
		num("original_position"),
		num("line"),
		num("original_line"),
		num("start_line"),
		num("original_start_line"),
		str("side"),
		str("start_side"),
		str("commit_id"),
		str("original_commit_id"),
		obj("user", userShape),
		str("created_at"),
		str("updated_at"),
		str("author_association"),
		str("body"),
		raw("reactions"),
	},
}

var refShape = &Shape{
	Name: "ref",
	Fields: []Field{
		str("label"),
		req(str("ref")),
		req(str("sha")),
		obj("user", userShape),
		obj("repo", repositoryShape),
	},
}

var pullRequestShape = &Shape{
	Name: "pull_request",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("html_url"),
		str("diff_url"),
		str("patch_url"),
		str("issue_url"),
		req(num("number")),
		str("state"),
		flag("locked"),
		str("title"),
		obj("user", userShape),
		str("body"),
		str("created_at"),
		str("updated_at"),
		str("closed_at"),
		str("merged_at"),
		str("merge_commit_sha"),
		obj("assignee", userShape),
		list("assignees", userShape),
		list("requested_reviewers", userShape),
		loose("requested_teams"),
		list("labels", labelShape),
		obj("milestone", milestoneShape),
		str("commits_url"),
		str("review_comments_url"),
		str("review_comment_url"),
		str("comments_url"),
		str("statuses_url"),
		obj("head", refShape),
		obj("base", refShape),
		{Name: "links", Wire: "_links", Kind: KindMap},
		str("author_association"),
		flag("draft"),
		flag("merged"),
		flag("mergeable"),
		flag("rebaseable"),
		str("mergeable_state"),
		loose("merged_by"),
		num("comments"),
		num("review_comments"),
		flag("maintainer_can_modify"),
		num("commits"),
		num("additions"),
		num("deletions"),
		num("changed_files"),
		loose("auto_merge"),
		str("active_lock_reason"),
	},
}

var reviewShape = &Shape{
	Name: "review",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		obj("user", userShape),
		str("body"),
		str("commit_id"),
		str("submitted_at"),
		str("state"),
		str("html_url"),
		str("pull_request_url"),
		str("author_association"),
		{Name: "links", Wire: "_links", Kind: KindMap},
	},
}

var assetShape = &Shape{
	Name: "asset",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("name"),
		str("label"),
		obj("uploader", userShape),
		str("content_type"),
		str("state"),
		num("size"),
		num("download_count"),
		str("created_at"),
		str("updated_at"),
		str("browser_download_url"),
	},
}

var releaseShape = &Shape{
	Name: "release",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("assets_url"),
		str("upload_url"),
		str("html_url"),
		req(str("tag_name")),
		str("target_commitish"),
		str("name"),
		flag("draft"),
		obj("author", userShape),
		flag("prerelease"),
		str("created_at"),
		str("published_at"),
		list("assets", assetShape),
		str("tarball_url"),
		str("zipball_url"),
		str("body"),
	},
}

var teamShape = &Shape{
	Name: "team",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		req(str("name")),
		str("slug"),
		str("description"),
		str("privacy"),
		str("url"),
		str("html_url"),
		str("members_url"),
		str("repositories_url"),
		str("permission"),
	},
}

var hookShape = &Shape{
	Name: "hook",
	Fields: []Field{
		req(num("id")),
		str("type"),
		str("name"),
		flag("active"),
		loose("events"),
		raw("config"),
		str("created_at"),
		str("updated_at"),
	},
}

var membershipShape = &Shape{
	Name: "membership",
	Fields: []Field{
		str("url"),
		str("state"),
		str("role"),
		str("organization_url"),
		obj("user", userShape),
	},
}

var deployKeyShape = &Shape{
	Name: "deploy_key",
	Fields: []Field{
		req(num("id")),
		req(str("key")),
		str("url"),
		str("title"),
		flag("verified"),
		str("created_at"),
		flag("read_only"),
	},
}

var deploymentShape = &Shape{
	Name: "deployment",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		req(str("sha")),
		str("ref"),
		str("task"),
		raw("payload"),
		str("original_environment"),
		str("environment"),
		str("description"),
		obj("creator", userShape),
		str("created_at"),
		str("updated_at"),
		str("statuses_url"),
		str("repository_url"),
	},
}

var deploymentStatusShape = &Shape{
	Name: "deployment_status",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		req(str("state")),
		obj("creator", userShape),
		str("description"),
		str("environment"),
		str("target_url"),
		str("created_at"),
		str("updated_at"),
		str("deployment_url"),
		str("repository_url"),
	},
}

var pageShape = &Shape{
	Name: "page",
	Fields: []Field{
		req(str("page_name")),
		str("title"),
		str("summary"),
		str("action"),
		str("sha"),
		str("html_url"),
	},
}

var pageBuildShape = &Shape{
	Name: "page_build",
	Fields: []Field{
		str("url"),
		str("status"),
		raw("error"),
		obj("pusher", userShape),
		str("commit"),
		num("duration"),
		str("created_at"),
		str("updated_at"),
	},
}

var projectShape = &Shape{
	Name: "project",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("owner_url"),
		str("url"),
		str("html_url"),
		str("columns_url"),
		req(str("name")),
		str("body"),
		num("number"),
		str("state"),
		obj("creator", userShape),
		str("created_at"),
		str("updated_at"),
	},
}

var projectCardShape = &Shape{
	Name: "project_card",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("project_url"),
		str("column_url"),
		num("column_id"),
		str("note"),
		flag("archived"),
		str("after_id"),
		obj("creator", userShape),
		str("created_at"),
		str("updated_at"),
		str("content_url"),
	},
}

var projectColumnShape = &Shape{
	Name: "project_column",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("url"),
		str("project_url"),
		str("cards_url"),
		req(str("name")),
		str("created_at"),
		str("updated_at"),
		str("after_id"),
	},
}

var registryShape = &Shape{
	Name: "registry",
	Fields: []Field{
		str("about_url"),
		str("name"),
		str("type"),
		str("url"),
		str("vendor"),
	},
}

var packageVersionShape = &Shape{
	Name: "package_version",
	Fields: []Field{
		req(num("id")),
		req(str("version")),
		str("summary"),
		str("body"),
		str("body_html"),
		str("manifest"),
		str("html_url"),
		str("tag_name"),
		str("target_commitish"),
		str("target_oid"),
		flag("draft"),
		flag("prerelease"),
		str("created_at"),
		str("updated_at"),
		loose("metadata"),
		loose("package_files"),
		obj("author", userShape),
		str("installation_command"),
	},
}

var packageShape = &Shape{
	Name: "package",
	Fields: []Field{
		req(num("id")),
		req(str("name")),
		str("package_type"),
		str("html_url"),
		str("created_at"),
		str("updated_at"),
		obj("owner", userShape),
		obj("package_version", packageVersionShape),
		obj("registry", registryShape),
	},
}

var checksPullRequestShape = &Shape{
	Name: "checks_pull_request",
	Fields: []Field{
		str("url"),
		req(num("id")),
		num("number"),
		raw("head"),
		raw("base"),
	},
}

var checksAppShape = &Shape{
	Name: "checks_app",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		obj("owner", userShape),
		str("name"),
		str("description"),
		str("external_url"),
		str("html_url"),
		str("created_at"),
		str("updated_at"),
		obj("permissions", permissionsShape),
		loose("events"),
	},
}

var checkRunOutputShape = &Shape{
	Name: "check_run_output",
	Fields: []Field{
		str("title"),
		str("summary"),
		str("text"),
		num("annotations_count"),
		str("annotations_url"),
	},
}

var checkSuiteShape = &Shape{
	Name: "check_suite",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		str("head_branch"),
		req(str("head_sha")),
		str("status"),
		str("conclusion"),
		str("url"),
		str("before"),
		str("after"),
		list("pull_requests", checksPullRequestShape),
		obj("app", checksAppShape),
		str("created_at"),
		str("updated_at"),
		num("latest_check_runs_count"),
		str("check_runs_url"),
		obj("head_commit", commitShape),
	},
}

var checkRunShape = &Shape{
	Name: "check_run",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		req(str("head_sha")),
		str("external_id"),
		str("url"),
		str("html_url"),
		str("details_url"),
		str("status"),
		str("conclusion"),
		str("started_at"),
		str("completed_at"),
		obj("output", checkRunOutputShape),
		str("name"),
		obj("check_suite", checkSuiteShape),
		obj("app", checksAppShape),
		list("pull_requests", checksPullRequestShape),
	},
}

var sponsorshipTierShape = &Shape{
	Name: "sponsorship_tier",
	Fields: []Field{
		str("node_id"),
		str("created_at"),
		str("description"),
		num("monthly_price_in_cents"),
		num("monthly_price_in_dollars"),
		str("name"),
	},
}

var sponsorshipShape = &Shape{
	Name: "sponsorship",
	Fields: []Field{
		str("node_id"),
		str("created_at"),
		obj("maintainer", userShape),
		obj("sponsor", userShape),
		str("privacy_level"),
		obj("tier", sponsorshipTierShape),
	},
}

var vulnerabilityAlertShape = &Shape{
	Name: "vulnerability_alert",
	Fields: []Field{
		req(num("id")),
		str("affected_range"),
		str("affected_package_name"),
		str("external_reference"),
		str("external_identifier"),
		str("fixed_in"),
	},
}

var advisoryIdentifierShape = &Shape{
	Name: "advisory_identifier",
	Fields: []Field{
		req(str("value")),
		str("type"),
	},
}

var advisoryReferenceShape = &Shape{
	Name: "advisory_reference",
	Fields: []Field{
		req(str("url")),
	},
}

var vulnerablePackageShape = &Shape{
	Name: "vulnerable_package",
	Fields: []Field{
		str("ecosystem"),
		req(str("name")),
	},
}

var patchedVersionShape = &Shape{
	Name: "patched_version",
	Fields: []Field{
		str("identifier"),
	},
}

var vulnerabilityShape = &Shape{
	Name: "vulnerability",
	Fields: []Field{
		obj("package", vulnerablePackageShape),
		str("severity"),
		str("vulnerable_version_range"),
		obj("first_patched_version", patchedVersionShape),
	},
}

var securityAdvisoryShape = &Shape{
	Name: "security_advisory",
	Fields: []Field{
		req(str("ghsa_id")),
		str("summary"),
		str("description"),
		str("severity"),
		list("identifiers", advisoryIdentifierShape),
		list("references", advisoryReferenceShape),
		str("published_at"),
		str("updated_at"),
		str("withdrawn_at"),
		list("vulnerabilities", vulnerabilityShape),
	},
}

var purchaseAccountShape = &Shape{
	Name: "purchase_account",
	Fields: []Field{
		str("type"),
		req(num("id")),
		req(str("login")),
		str("organization_billing_email"),
	},
}

var planShape = &Shape{
	Name: "plan",
	Fields: []Field{
		req(num("id")),
		str("name"),
		str("description"),
		num("monthly_price_in_cents"),
		num("yearly_price_in_cents"),
		num("yearly_price"),
		str("price_model"),
		flag("has_free_trial"),
		str("unit_name"),
		loose("bullets"),
	},
}

var marketplacePurchaseShape = &Shape{
	Name: "marketplace_purchase",
	Fields: []Field{
		obj("account", purchaseAccountShape),
		str("billing_cycle"),
		num("unit_count"),
		flag("on_free_trial"),
		str("free_trial_ends_on"),
		str("next_billing_date"),
		obj("plan", planShape),
	},
}

var contentReferenceShape = &Shape{
	Name: "content_reference",
	Fields: []Field{
		req(num("id")),
		str("node_id"),
		req(str("reference")),
	},
}

var statusBranchCommitShape = &Shape{
	Name: "status_branch_commit",
	Fields: []Field{
		req(str("sha")),
		str("url"),
		str("html_url"),
	},
}

var statusCommitShape = &Shape{
	Name: "status_commit",
	Fields: []Field{
		req(str("sha")),
		str("node_id"),
		raw("commit"),
		str("url"),
		str("html_url"),
		str("comments_url"),
		obj("author", userShape),
		obj("committer", userShape),
		list("parents", statusBranchCommitShape),
	},
}

var branchShape = &Shape{
	Name: "branch",
	Fields: []Field{
		req(str("name")),
		obj("commit", statusBranchCommitShape),
		loose("protected"),
	},
}

// recordShapes is the full set registered with a catalog, resolvable by name
// from external shape documents.
var recordShapes = []*Shape{
	userShape,
	enterpriseShape,
	organizationShape,
	shortRepositoryShape,
	repositoryShape,
	permissionsShape,
	installationShape,
	commitUserShape,
	commitShape,
	labelShape,
	milestoneShape,
	issueShape,
	commentShape,
	refShape,
	pullRequestShape,
	reviewShape,
	assetShape,
	releaseShape,
	teamShape,
	hookShape,
	membershipShape,
	deployKeyShape,
	deploymentShape,
	deploymentStatusShape,
	pageShape,
	pageBuildShape,
	projectShape,
	projectCardShape,
	projectColumnShape,
	registryShape,
	packageVersionShape,
	packageShape,
	checksPullRequestShape,
	checksAppShape,
	checkRunOutputShape,
	checkSuiteShape,
	checkRunShape,
	sponsorshipTierShape,
	sponsorshipShape,
	vulnerabilityAlertShape,
	advisoryIdentifierShape,
	advisoryReferenceShape,
	vulnerablePackageShape,
	patchedVersionShape,
	vulnerabilityShape,
	securityAdvisoryShape,
	purchaseAccountShape,
	planShape,
	marketplacePurchaseShape,
	contentReferenceShape,
	statusBranchCommitShape,
	statusCommitShape,
	branchShape,
}

// eventFields prepends the common envelope fields. All of them are optional:
// GitHub omits repository on organization-level deliveries, organization on
// personal repositories, and enterprise everywhere outside GHES.
func eventFields(extra ...Field) []Field {
	base := []Field{
		str("action"),
		obj("sender", userShape),
		obj("repository", repositoryShape),
		obj("organization", organizationShape),
		obj("enterprise", enterpriseShape),
		obj("installation", installationShape),
	}
	return append(base, extra...)
}

func eventShape(name string, extra ...Field) *Shape {
	return &Shape{Name: name, Fields: eventFields(extra...)}
}

// githubEvents is the wire-name → envelope-shape table. Matching is exact
// and case-sensitive.
var githubEvents = map[string]*Shape{
	"ping": eventShape("ping",
		str("zen"),
		num("hook_id"),
		obj("hook", hookShape),
	),
	"check_run": eventShape("check_run",
		req(obj("check_run", checkRunShape)),
		raw("requested_action"),
	),
	"check_suite": eventShape("check_suite",
		req(obj("check_suite", checkSuiteShape)),
	),
	"commit_comment": eventShape("commit_comment",
		req(obj("comment", commentShape)),
	),
	"content_reference": eventShape("content_reference",
		req(obj("content_reference", contentReferenceShape)),
	),
	"create": eventShape("create",
		str("ref"),
		str("ref_type"),
		str("master_branch"),
		str("description"),
		str("pusher_type"),
	),
	"delete": eventShape("delete",
		str("ref"),
		str("ref_type"),
		str("pusher_type"),
	),
	"deploy_key": eventShape("deploy_key",
		req(obj("key", deployKeyShape)),
	),
	"deployment": eventShape("deployment",
		req(obj("deployment", deploymentShape)),
	),
	"deployment_status": eventShape("deployment_status",
		req(obj("deployment_status", deploymentStatusShape)),
		req(obj("deployment", deploymentShape)),
	),
	"fork": eventShape("fork",
		req(obj("forkee", repositoryShape)),
	),
	"github_app_authorization": eventShape("github_app_authorization"),
	"gollum": eventShape("gollum",
		req(list("pages", pageShape)),
	),
	"installation": eventShape("installation",
		list("repositories", shortRepositoryShape),
	),
	"installation_repositories": eventShape("installation_repositories",
		str("repository_selection"),
		list("repositories_added", shortRepositoryShape),
		list("repositories_removed", shortRepositoryShape),
	),
	"issue_comment": eventShape("issue_comment",
		req(obj("issue", issueShape)),
		req(obj("comment", commentShape)),
		raw("changes"),
	),
	"issues": eventShape("issues",
		req(obj("issue", issueShape)),
		raw("changes"),
		obj("label", labelShape),
		obj("assignee", userShape),
		obj("milestone", milestoneShape),
	),
	"label": eventShape("label",
		req(obj("label", labelShape)),
		raw("changes"),
	),
	"marketplace_purchase": eventShape("marketplace_purchase",
		str("effective_date"),
		req(obj("marketplace_purchase", marketplacePurchaseShape)),
		raw("previous_marketplace_purchase"),
	),
	"member": eventShape("member",
		req(obj("member", userShape)),
	),
	"membership": eventShape("membership",
		str("scope"),
		obj("member", userShape),
		obj("team", teamShape),
	),
	"meta": eventShape("meta",
		num("hook_id"),
		obj("hook", hookShape),
	),
	"milestone": eventShape("milestone",
		req(obj("milestone", milestoneShape)),
		raw("changes"),
	),
	"org_block": eventShape("org_block",
		req(obj("blocked_user", userShape)),
	),
	"organization": eventShape("organization",
		loose("invitation"),
		obj("membership", membershipShape),
	),
	"package": eventShape("package",
		req(obj("package", packageShape)),
	),
	"page_build": eventShape("page_build",
		num("id"),
		req(obj("build", pageBuildShape)),
	),
	"project": eventShape("project",
		req(obj("project", projectShape)),
	),
	"project_card": eventShape("project_card",
		req(obj("project_card", projectCardShape)),
		raw("changes"),
	),
	"project_column": eventShape("project_column",
		req(obj("project_column", projectColumnShape)),
		raw("changes"),
	),
	"public": eventShape("public"),
	"pull_request": eventShape("pull_request",
		num("number"),
		req(obj("pull_request", pullRequestShape)),
		obj("assignee", userShape),
		obj("label", labelShape),
		raw("changes"),
		str("before"),
		str("after"),
		obj("requested_reviewer", userShape),
	),
	"pull_request_review": eventShape("pull_request_review",
		req(obj("review", reviewShape)),
		req(obj("pull_request", pullRequestShape)),
		raw("changes"),
	),
	"pull_request_review_comment": eventShape("pull_request_review_comment",
		req(obj("comment", commentShape)),
		req(obj("pull_request", pullRequestShape)),
		raw("changes"),
	),
	"push": eventShape("push",
		str("ref"),
		str("before"),
		str("after"),
		flag("created"),
		flag("deleted"),
		flag("forced"),
		str("base_ref"),
		str("compare"),
		req(list("commits", commitShape)),
		obj("head_commit", commitShape),
		obj("pusher", commitUserShape),
	),
	"release": eventShape("release",
		req(obj("release", releaseShape)),
		raw("changes"),
	),
	"repository": eventShape("repository"),
	"repository_dispatch": eventShape("repository_dispatch",
		str("branch"),
		raw("client_payload"),
	),
	"repository_import": eventShape("repository_import",
		str("status"),
	),
	"repository_vulnerability_alert": eventShape("repository_vulnerability_alert",
		req(obj("alert", vulnerabilityAlertShape)),
	),
	// security_advisory deliveries carry none of the common envelope fields;
	// this is upstream behavior, not normalized away here.
	"security_advisory": {
		Name: "security_advisory",
		Fields: []Field{
			str("action"),
			req(obj("security_advisory", securityAdvisoryShape)),
		},
	},
	"sponsorship": eventShape("sponsorship",
		req(obj("sponsorship", sponsorshipShape)),
		raw("changes"),
		str("effective_date"),
	),
	"star": eventShape("star",
		str("starred_at"),
	),
	"status": eventShape("status",
		num("id"),
		str("sha"),
		str("name"),
		str("target_url"),
		str("context"),
		str("description"),
		str("state"),
		req(obj("commit", statusCommitShape)),
		list("branches", branchShape),
		str("created_at"),
		str("updated_at"),
	),
	"team": eventShape("team",
		req(obj("team", teamShape)),
	),
	"team_add": eventShape("team_add",
		req(obj("team", teamShape)),
	),
	"watch": eventShape("watch"),
}

// registerGithub populates a catalog with the built-in shapes and events.
func registerGithub(c *Catalog) {
	for _, s := range recordShapes {
		if err := c.RegisterShape(s); err != nil {
			panic(err)
		}
	}
	for name, s := range githubEvents {
		if err := c.RegisterEvent(name, s); err != nil {
			panic(err)
		}
	}
}
