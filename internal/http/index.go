// README: Minimal built-in chat page.
package http

// indexHTML is a self-contained page for poking at the chat endpoint; replies
// are HTML fragments, so they are injected as-is.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Activabot</title>
  <style>
    body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; }
    #log { border: 1px solid #ccc; padding: 1rem; min-height: 240px; margin-bottom: 1rem; }
    #log div { margin-bottom: .75rem; }
    form { display: flex; gap: .5rem; }
    input { flex: 1; padding: .5rem; }
  </style>
</head>
<body>
  <h1>Activabot</h1>
  <div id="log"></div>
  <form id="f">
    <input id="m" autocomplete="off" placeholder="Try: events in Dallas">
    <button>Send</button>
  </form>
  <script>
    const log = document.getElementById("log");
    document.getElementById("f").addEventListener("submit", async (e) => {
      e.preventDefault();
      const input = document.getElementById("m");
      const message = input.value.trim();
      if (!message) return;
      input.value = "";
      log.insertAdjacentHTML("beforeend", "<div><strong>You:</strong> " + message + "</div>");
      const resp = await fetch("/api/chat", {
        method: "POST",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify({message}),
      });
      const data = await resp.json();
      log.insertAdjacentHTML("beforeend", "<div>" + (data.reply || data.error) + "</div>");
      log.scrollTop = log.scrollHeight;
    });
  </script>
</body>
</html>`
